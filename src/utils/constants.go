package utils

const ShortDashDateLayout = "2006-01-02"

const (
	CacheKeyQuotePrefix    = "quote"
	CacheKeyHoldingsPrefix = "holdings"
)

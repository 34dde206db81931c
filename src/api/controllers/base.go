package controllers

// Controllers bundles the API controllers behind one constructor so the
// handler layer wires a single dependency.
type Controllers struct {
	Records   RecordsControllerI
	Sync      SyncControllerI
	Portfolio PortfolioControllerI
	Quotes    QuotesControllerI
}

func NewControllers(records RecordsControllerI, sync SyncControllerI, portfolio PortfolioControllerI, quotes QuotesControllerI) *Controllers {
	return &Controllers{
		Records:   records,
		Sync:      sync,
		Portfolio: portfolio,
		Quotes:    quotes,
	}
}

package utils_test

import (
	"testing"
	"time"

	"tracker/src/utils"
)

func TestCache(t *testing.T) {
	t.Run("should return the cached string value if valid", func(t *testing.T) {
		cache := utils.NewCache[string]()
		cache.Set("test value", 1*time.Minute)

		value, found := cache.Get()
		if !found || value != "test value" {
			t.Error("expected 'test value', got", value)
		}
	})

	t.Run("should miss when the entry is expired", func(t *testing.T) {
		cache := utils.NewCache[string]()
		cache.Set("test value", -1*time.Second)

		value, found := cache.Get()
		if found {
			t.Error("expected cache miss, got", value)
		}
	})

	t.Run("should miss when nothing was ever set", func(t *testing.T) {
		cache := utils.NewCache[string]()

		if _, found := cache.Get(); found {
			t.Error("expected cache miss on empty cache")
		}
	})

	t.Run("should return the cached struct value if valid", func(t *testing.T) {
		type User struct {
			Name  string
			Email string
		}
		cache := utils.NewCache[User]()
		user := User{Name: "John Doe", Email: "john@example.com"}
		cache.Set(user, 1*time.Minute)

		value, found := cache.Get()
		if !found || value.Name != "John Doe" {
			t.Errorf("expected 'John Doe', got %+v", value)
		}
	})

	t.Run("GetStale serves an expired entry with its fetch time", func(t *testing.T) {
		cache := utils.NewCache[string]()
		cache.Set("stale value", -1*time.Second)

		value, cachedAt, ok := cache.GetStale()
		if !ok || value != "stale value" {
			t.Error("expected stale value, got", value)
		}
		if cachedAt.IsZero() {
			t.Error("expected a non-zero cachedAt")
		}
	})

	t.Run("GetStale misses when nothing was ever set", func(t *testing.T) {
		cache := utils.NewCache[string]()

		if _, _, ok := cache.GetStale(); ok {
			t.Error("expected stale miss on empty cache")
		}
	})

	t.Run("Clear removes the value for both paths", func(t *testing.T) {
		cache := utils.NewCache[string]()
		cache.Set("test value", 1*time.Minute)
		cache.Clear()

		if _, found := cache.Get(); found {
			t.Error("expected cache miss after Clear")
		}
		if _, _, ok := cache.GetStale(); ok {
			t.Error("expected stale miss after Clear")
		}
	})
}

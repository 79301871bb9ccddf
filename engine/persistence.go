/*
persistence.go - JSON encoding over the key-value Store

PURPOSE:
  Each collection is serialized under its own key. Load is tolerant: a
  missing or unreadable key falls back to the empty default and the session
  continues. Save failures are logged and surfaced to the caller, but the
  in-memory state is never rolled back - the engine favors availability of
  the session over strict durability.
*/
package engine

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/budget-engine/budget"
)

// storedPercentages is the on-disk shape of the multiplier pair. The derived
// percentages are never persisted.
type storedPercentages struct {
	SpendMultiplier   decimal.Decimal `json:"spend_multiplier"`
	SavingsMultiplier decimal.Decimal `json:"savings_multiplier"`
}

// =============================================================================
// LOAD
// =============================================================================

// Load hydrates the controller from the store. Every key is read
// independently; a failure on one leaves that collection at its default and
// does not abort the rest.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	loadJSON(ctx, c.store, keyIncome, &c.incomes)
	loadJSON(ctx, c.store, keyExpenses, &c.expenses)
	loadJSON(ctx, c.store, keyPaychecks, &c.paychecks)
	loadJSON(ctx, c.store, keyPayments, &c.payments)
	loadJSON(ctx, c.store, keyMonthStates, &c.monthStates)
	loadJSON(ctx, c.store, keyArchives, &c.archives)
	loadJSON(ctx, c.store, keyDailyExpenses, &c.dailyExpenses)
	loadJSON(ctx, c.store, keyHousehold, &c.members)

	var pcts storedPercentages
	if loadJSON(ctx, c.store, keyPercentages, &pcts) {
		c.spendMultiplier = pcts.SpendMultiplier
		c.savingsMultiplier = pcts.SavingsMultiplier
	}

	var settings budget.AppSettings
	if loadJSON(ctx, c.store, keySettings, &settings) {
		c.settings = settings
	}

	if d, ok := loadDecimal(ctx, c.store, keySpendingTotal); ok {
		c.spendingTotal = budget.Money{Value: d}
	}
	if d, ok := loadDecimal(ctx, c.store, keySavingsTotal); ok {
		c.savingsTotal = budget.Money{Value: d}
	}

	if raw, err := c.store.Get(ctx, keyLastReset); err != nil {
		log.Printf("budget: reading %s: %v (using zero date)", keyLastReset, err)
	} else if len(raw) > 0 {
		if t, err := time.Parse(time.RFC3339, string(raw)); err == nil {
			c.lastResetDate = t
		} else {
			log.Printf("budget: bad %s value %q: %v (using zero date)", keyLastReset, raw, err)
		}
	}

	return nil
}

// loadJSON reads and decodes one key. Returns true only when a value was
// present and decoded; errors are logged, never fatal.
func loadJSON(ctx context.Context, store Store, key string, v any) bool {
	raw, err := store.Get(ctx, key)
	if err != nil {
		log.Printf("budget: reading %s: %v (using default)", key, err)
		return false
	}
	if len(raw) == 0 {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Printf("budget: decoding %s: %v (using default)", key, err)
		return false
	}
	return true
}

func loadDecimal(ctx context.Context, store Store, key string) (decimal.Decimal, bool) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		log.Printf("budget: reading %s: %v (using zero)", key, err)
		return decimal.Zero, false
	}
	if len(raw) == 0 {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		log.Printf("budget: bad %s value %q: %v (using zero)", key, raw, err)
		return decimal.Zero, false
	}
	return d, true
}

// =============================================================================
// SAVE
// =============================================================================

func (c *Controller) saveJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("budget: encoding %s: %v", key, err)
		return err
	}
	if err := c.store.Set(ctx, key, raw); err != nil {
		log.Printf("budget: writing %s: %v (in-memory state kept)", key, err)
		return err
	}
	return nil
}

func (c *Controller) saveIncomes(ctx context.Context) error {
	return c.saveJSON(ctx, keyIncome, c.incomes)
}

func (c *Controller) saveExpenses(ctx context.Context) error {
	return c.saveJSON(ctx, keyExpenses, c.expenses)
}

func (c *Controller) savePaychecks(ctx context.Context) error {
	return c.saveJSON(ctx, keyPaychecks, c.paychecks)
}

func (c *Controller) savePayments(ctx context.Context) error {
	return c.saveJSON(ctx, keyPayments, c.payments)
}

func (c *Controller) saveMonthStates(ctx context.Context) error {
	return c.saveJSON(ctx, keyMonthStates, c.monthStates)
}

func (c *Controller) saveArchives(ctx context.Context) error {
	return c.saveJSON(ctx, keyArchives, c.archives)
}

func (c *Controller) saveDailyExpenses(ctx context.Context) error {
	return c.saveJSON(ctx, keyDailyExpenses, c.dailyExpenses)
}

func (c *Controller) saveMembers(ctx context.Context) error {
	return c.saveJSON(ctx, keyHousehold, c.members)
}

func (c *Controller) saveSettings(ctx context.Context) error {
	return c.saveJSON(ctx, keySettings, c.settings)
}

func (c *Controller) savePercentages(ctx context.Context) error {
	return c.saveJSON(ctx, keyPercentages, storedPercentages{
		SpendMultiplier:   c.spendMultiplier,
		SavingsMultiplier: c.savingsMultiplier,
	})
}

func (c *Controller) saveTotals(ctx context.Context) error {
	return firstError(
		c.setRaw(ctx, keySpendingTotal, c.spendingTotal.Value.String()),
		c.setRaw(ctx, keySavingsTotal, c.savingsTotal.Value.String()),
	)
}

func (c *Controller) saveLastReset(ctx context.Context) error {
	return c.setRaw(ctx, keyLastReset, c.lastResetDate.Format(time.RFC3339))
}

func (c *Controller) setRaw(ctx context.Context, key, value string) error {
	if err := c.store.Set(ctx, key, []byte(value)); err != nil {
		log.Printf("budget: writing %s: %v (in-memory state kept)", key, err)
		return err
	}
	return nil
}

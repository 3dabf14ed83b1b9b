// Package catalogedit applies the simple per-item field edits of the
// balancing config: ragfair flags, trader assortment and barter prices,
// handbook and flea prices.
package catalogedit

import (
	"context"

	"github.com/osse101/AmmoBalance_Go/internal/domain"
	"github.com/osse101/AmmoBalance_Go/internal/metrics"
)

// Result counts applied edits and edits whose target was missing.
type Result struct {
	Edits  int
	Misses int
}

// Editor applies field edits to the catalog.
type Editor interface {
	Apply(ctx context.Context, tables *domain.Tables, records []domain.NamedRecord) Result
}

type editor struct {
	reporter domain.Reporter
	metrics  *metrics.Recorder
}

// NewEditor creates an Editor. rec may be nil.
func NewEditor(reporter domain.Reporter, rec *metrics.Recorder) Editor {
	return &editor{reporter: reporter, metrics: rec}
}

func (e *editor) Apply(_ context.Context, tables *domain.Tables, records []domain.NamedRecord) Result {
	var res Result
	for _, r := range records {
		item, ok := tables.Items[r.ID]
		if !ok || item == nil {
			e.reporter.Warn(LogMsgItemNotFound, LogFieldAmmo, r.ID)
			res.Misses++
			continue
		}
		e.applyRecord(tables, r.ID, item, r.Record, &res)
	}
	e.reporter.Success(LogMsgFinished, LogFieldEdits, res.Edits, LogFieldMisses, res.Misses)
	return res
}

func (e *editor) applyRecord(tables *domain.Tables, id string, item *domain.ItemTemplate, rec domain.ConfigRecord, res *Result) {
	if rec.CanRequireOnRagfair != nil || rec.CanSellOnRagfair != nil {
		if rec.CanRequireOnRagfair != nil {
			item.Props.CanRequireOnRagfair = *rec.CanRequireOnRagfair
		}
		if rec.CanSellOnRagfair != nil {
			item.Props.CanSellOnRagfair = *rec.CanSellOnRagfair
		}
		e.hit(FieldRagfairFlags, res)
	}

	for _, traderID := range rec.RemoveFromTraders {
		e.removeFromTrader(tables, id, traderID, res)
	}

	for _, traderID := range sortedKeys(rec.ChangeTraderPrice) {
		e.changeTraderPrice(tables, id, traderID, rec.ChangeTraderPrice[traderID], res)
	}

	if rec.HandbookPrice != nil {
		if entry := tables.Handbook.Find(id); entry != nil {
			entry.Price = *rec.HandbookPrice
			e.hit(FieldHandbookPrice, res)
		} else {
			e.miss(FieldHandbookPrice, res, LogMsgHandbookNotFound, LogFieldAmmo, id)
		}
	}

	if rec.FleaPrice != nil {
		if tables.Prices == nil {
			tables.Prices = make(map[string]int)
		}
		tables.Prices[id] = *rec.FleaPrice
		e.hit(FieldFleaPrice, res)
	}

	// an item that can be neither listed nor requested has no flea price
	if !item.Props.CanRequireOnRagfair && !item.Props.CanSellOnRagfair {
		if _, ok := tables.Prices[id]; ok {
			delete(tables.Prices, id)
			e.hit(FieldFleaPriceUnset, res)
		}
	}
}

func (e *editor) assort(tables *domain.Tables, traderID string) *domain.Assort {
	trader, ok := tables.Traders[traderID]
	if !ok || trader == nil || trader.Assort == nil || trader.Assort.Items == nil {
		return nil
	}
	return trader.Assort
}

func (e *editor) removeFromTrader(tables *domain.Tables, id, traderID string, res *Result) {
	assort := e.assort(tables, traderID)
	if assort == nil {
		e.miss(FieldTraderRemoval, res, LogMsgTraderNotFound, LogFieldTrader, traderID)
		return
	}
	idx := assort.IndexOf(id)
	if idx == -1 {
		e.miss(FieldTraderRemoval, res, LogMsgNotInAssort, LogFieldAmmo, id, LogFieldTrader, traderID)
		return
	}
	assort.Items = append(assort.Items[:idx], assort.Items[idx+1:]...)
	e.hit(FieldTraderRemoval, res)
}

func (e *editor) changeTraderPrice(tables *domain.Tables, id, traderID string, price int, res *Result) {
	assort := e.assort(tables, traderID)
	if assort == nil {
		e.miss(FieldTraderPrice, res, LogMsgTraderNotFound, LogFieldTrader, traderID)
		return
	}
	idx := assort.IndexOf(id)
	if idx == -1 {
		e.miss(FieldTraderPrice, res, LogMsgNotInAssort, LogFieldAmmo, id, LogFieldTrader, traderID)
		return
	}
	scheme := assort.BarterScheme[assort.Items[idx].ID]
	if len(scheme) == 0 || len(scheme[0]) == 0 {
		e.miss(FieldTraderPrice, res, LogMsgBarterNotFound, LogFieldAmmo, id, LogFieldTrader, traderID)
		return
	}
	scheme[0][0].Count = float64(price)
	e.hit(FieldTraderPrice, res)
}

func (e *editor) hit(field string, res *Result) {
	res.Edits++
	e.metrics.FieldEdited(field)
}

func (e *editor) miss(field string, res *Result, msg string, args ...any) {
	res.Misses++
	e.reporter.Warn(msg, args...)
	e.metrics.FieldEditMissed(field)
}

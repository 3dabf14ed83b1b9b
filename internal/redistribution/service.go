package redistribution

import (
	"context"

	"github.com/osse101/AmmoBalance_Go/internal/domain"
	"github.com/osse101/AmmoBalance_Go/internal/metrics"
)

// Options tunes a redistribution pass.
type Options struct {
	// Maps lists the map regions whose loose loot is patched.
	Maps []string
	// IdempotentSpawns stops a repeated pass from synthesizing a second
	// instance under an existing composed key.
	IdempotentSpawns bool
	// Metrics may be nil.
	Metrics *metrics.Recorder
}

// DefaultOptions patches DefaultMaps without idempotency guard or metrics.
func DefaultOptions() Options {
	return Options{Maps: append([]string(nil), DefaultMaps...)}
}

// Summary counts what one pass changed.
type Summary struct {
	StaticAmmoAdded int
	StaticLootAdded int
	MapSpawnsAdded  int
	GroupsPatched   int
	GroupsSkipped   int
	RecordsSkipped  int
}

// Service runs the redistribution pass.
type Service interface {
	// Run mutates tables in place. It must be called at most once per table
	// lifetime unless Options.IdempotentSpawns is set: spawn point instances
	// are appended, not merged.
	Run(ctx context.Context, tables *domain.Tables, records []domain.NamedRecord) Summary
}

type service struct {
	reporter domain.Reporter
	opts     Options
}

// NewService creates a redistribution service reporting to reporter.
func NewService(reporter domain.Reporter, opts Options) Service {
	return &service{reporter: reporter, opts: opts}
}

func (s *service) Run(_ context.Context, tables *domain.Tables, records []domain.NamedRecord) Summary {
	var sum Summary
	s.reporter.Info(LogMsgStarted, LogFieldCount, len(records))

	builder := NewGroupBuilder()
	for _, rec := range records {
		if !s.collect(tables, rec, builder) {
			sum.RecordsSkipped++
		}
	}

	for _, g := range builder.Groups() {
		if s.patchGroup(tables, g, &sum) {
			sum.GroupsPatched++
			s.opts.Metrics.GroupPropagated()
		} else {
			sum.GroupsSkipped++
		}
	}

	s.reporter.Success(LogMsgStaticAmmoAdded, LogFieldCount, sum.StaticAmmoAdded)
	s.reporter.Success(LogMsgStaticLootAdded, LogFieldCount, sum.StaticLootAdded)
	s.reporter.Success(LogMsgMapSpawnsAdded, LogFieldCount, sum.MapSpawnsAdded)
	return sum
}

// collect adds the record's weights to the builder. It returns false when the
// record carries spawnRelativeProbability but cannot be used.
func (s *service) collect(tables *domain.Tables, rec domain.NamedRecord, builder *GroupBuilder) bool {
	srp := rec.Record.SpawnRelativeProbability
	if srp == nil {
		return true
	}

	item, ok := tables.Items[rec.ID]
	if !ok || item == nil {
		s.skipRecord(ReasonItemNotFound, LogMsgItemNotFound, LogFieldAmmo, rec.ID)
		return false
	}
	if _, ok := tables.StaticAmmo[item.Props.Caliber]; !ok {
		s.skipRecord(ReasonCaliberNotFound, LogMsgCaliberNotFound, LogFieldAmmo, rec.ID, LogFieldCaliber, item.Props.Caliber)
		return false
	}

	originID, raw, ok := srp.Origin()
	if !ok {
		s.skipRecord(ReasonMalformed, LogMsgMalformedProbability, LogFieldAmmo, rec.ID)
		return false
	}
	if originID == domain.PlaceholderOriginID {
		s.skipRecord(ReasonPlaceholder, LogMsgPlaceholderOrigin, LogFieldAmmo, rec.ID)
		return false
	}

	weights := raw.Weights(rec.ID)
	for _, w := range weights {
		if w < 0 {
			s.skipRecord(ReasonNegativeWeight, LogMsgNegativeWeight, LogFieldAmmo, rec.ID, LogFieldWeights, weights)
			return false
		}
	}

	builder.Add(originID, weights)
	return true
}

func (s *service) skipRecord(reason, msg string, args ...any) {
	s.reporter.Warn(msg, args...)
	s.opts.Metrics.RecordSkipped(reason)
}

func (s *service) skipGroup(reason, msg string, args ...any) {
	s.reporter.Warn(msg, args...)
	s.opts.Metrics.GroupSkipped(reason)
}

func (s *service) patchGroup(tables *domain.Tables, g *VariantGroup, sum *Summary) bool {
	origin, ok := tables.Items[g.OriginID]
	if !ok || origin == nil {
		s.skipGroup(ReasonOriginNotFound, LogMsgOriginNotFound, LogFieldOrigin, g.OriginID)
		return false
	}

	shares, ok := Normalize(g)
	if !ok {
		s.skipGroup(ReasonZeroSum, LogMsgZeroSum, LogFieldOrigin, g.OriginID)
		return false
	}

	var ammoAdded, lootAdded, spawnsAdded int

	caliber := origin.Props.Caliber
	if pool, ok := tables.StaticAmmo[caliber]; ok {
		patched, added, found := PatchPool(pool, g.OriginID, shares)
		if found {
			tables.StaticAmmo[caliber] = patched
			ammoAdded = added
		} else {
			s.reporter.Error(LogMsgOriginNotInPool, LogFieldOrigin, g.OriginID, LogFieldCaliber, caliber)
		}
	} else {
		s.reporter.Warn(LogMsgOriginCaliberMissing, LogFieldOrigin, g.OriginID, LogFieldCaliber, caliber)
	}

	for _, container := range tables.StaticLoot {
		if container == nil {
			continue
		}
		patched, added, found := PatchPool(container.ItemDistribution, g.OriginID, shares)
		if found {
			container.ItemDistribution = patched
			lootAdded += added
		}
	}

	spawnsAdded = PatchLocations(tables.Locations, s.opts.Maps, g.OriginID, shares, s.opts.IdempotentSpawns)

	s.opts.Metrics.EntriesAddedTo(metrics.KindStaticAmmo, ammoAdded)
	s.opts.Metrics.EntriesAddedTo(metrics.KindStaticLoot, lootAdded)
	s.opts.Metrics.EntriesAddedTo(metrics.KindMapSpawn, spawnsAdded)
	sum.StaticAmmoAdded += ammoAdded
	sum.StaticLootAdded += lootAdded
	sum.MapSpawnsAdded += spawnsAdded

	s.reporter.Info(LogMsgGroupPatched,
		LogFieldOrigin, g.OriginID,
		LogFieldStaticAmmo, ammoAdded,
		LogFieldStaticLoot, lootAdded,
		LogFieldMapSpawns, spawnsAdded)
	return true
}

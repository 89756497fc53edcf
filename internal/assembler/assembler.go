package assembler

import (
	"context"
	"sync"

	"sitegen/internal/content"
	"sitegen/internal/planner"
	"sitegen/internal/site"

	"go.uber.org/zap"
)

// Assembler turns a generation request into the ordered section list of a
// website. Generation failures never escape it: every section that cannot
// be model-sourced is fallback-sourced instead, so assembly is total.
type Assembler struct {
	generator   content.Generator
	logger      *zap.Logger
	concurrency int
}

type Option func(*Assembler)

// WithLogger attaches a structured logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithConcurrency enables concurrent fan-out of per-section generation,
// bounded to n in-flight calls. Results are reassembled by plan index so
// the final order never depends on completion order.
func WithConcurrency(n int) Option {
	return func(a *Assembler) {
		if n > 1 {
			a.concurrency = n
		}
	}
}

// New builds an Assembler. A nil generator is valid and means every
// section is fallback-sourced.
func New(gen content.Generator, opts ...Option) *Assembler {
	a := &Assembler{
		generator:   gen,
		logger:      zap.NewNop(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble resolves the section plan for the request's industry and builds
// one section per planned type, in plan order. It never returns an error.
func (a *Assembler) Assemble(ctx context.Context, req content.Request) []site.Section {
	plan := planner.ResolvePlan(req.Industry)
	sections := make([]site.Section, len(plan))

	if a.concurrency > 1 {
		var wg sync.WaitGroup
		sem := make(chan struct{}, a.concurrency)
		for i, st := range plan {
			wg.Add(1)
			go func(i int, st planner.SectionType) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()
				sections[i] = a.buildSection(ctx, st, req, i+1)
			}(i, st)
		}
		wg.Wait()
		return sections
	}

	for i, st := range plan {
		sections[i] = a.buildSection(ctx, st, req, i+1)
	}
	return sections
}

// AssembleWebsite wraps Assemble into the full website document, deriving
// metadata and settings from the request.
func (a *Assembler) AssembleWebsite(ctx context.Context, req content.Request) site.Website {
	return site.Website{
		Metadata: site.NewMetadata(req.Name(), req.Description),
		Settings: site.SettingsForStyle(req.Style),
		Sections: a.Assemble(ctx, req),
	}
}

// buildSection runs one section through generate-or-fallback and the
// mapping table. Failures are contained here: a sibling section's outcome
// is never affected.
func (a *Assembler) buildSection(ctx context.Context, st planner.SectionType, req content.Request, order int) site.Section {
	payload := a.obtainPayload(ctx, st, req)
	component, props := mapSection(st, payload, req)
	applyTheme(st, props)
	return site.Section{
		Type:  component,
		Order: order,
		Props: props,
	}
}

func (a *Assembler) obtainPayload(ctx context.Context, st planner.SectionType, req content.Request) content.Payload {
	if a.generator == nil {
		return content.FallbackPayload(st, req)
	}
	payload, err := a.generator.Generate(ctx, st, req)
	if err != nil {
		a.logger.Warn("section generation failed, using fallback content",
			zap.String("section", string(st)),
			zap.Error(err),
		)
		return content.FallbackPayload(st, req)
	}
	if payload == nil {
		payload = content.Payload{}
	}
	a.logger.Debug("section generated",
		zap.String("section", string(st)),
		zap.Int("keys", len(payload)),
	)
	return payload
}

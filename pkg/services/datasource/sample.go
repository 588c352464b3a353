package datasource

import (
	"context"
	"math/rand"

	"github.com/paylens/fee-insights/pkg/models/domain"
	"github.com/paylens/fee-insights/pkg/services/sample"
)

type sampleProvider struct {
	records []domain.InvoiceRecord
}

// NewSampleProvider returns a Provider backed by the synthetic invoice
// generator. The data set is generated once, up front, and every call
// serves the same snapshot, so the aggregates stay consistent with each
// other across requests. A nil rng makes the snapshot time-seeded.
func NewSampleProvider(rng *rand.Rand, cfg sample.Config) Provider {
	return &sampleProvider{records: sample.Generate(rng, cfg)}
}

func (p *sampleProvider) ListInvoices(_ context.Context) ([]domain.InvoiceRecord, error) {
	return p.records, nil
}

package adapters

import (
	"github.com/paylens/fee-insights/pkg/models/domain"
	"github.com/paylens/fee-insights/pkg/models/store"
	"github.com/paylens/fee-insights/pkg/services/ica"
)

func MapStoreInvoiceRowToDomainRecord(row store.InvoiceRow) domain.InvoiceRecord {
	loc := ica.Lookup(row.InvoiceICA)

	return domain.InvoiceRecord{
		ID:                     row.EventID,
		TotalCosts:             row.TotalCosts,
		Currency:               row.Ccy,
		BillDate:               row.BillDate,
		ServiceCodeDescription: row.ServiceCodeDescription,
		EventDesc:              row.EventDesc,
		QtyAmt:                 row.QtyAmt,
		Rate:                   row.Rate,
		Charge:                 row.Charge,
		TaxCharge:              row.TaxCharge,
		TotalCharge:            row.TotalCharge,
		InvoiceICA:             row.InvoiceICA,
		CollectionMethod:       domain.CollectionMethod(row.CollectionMethod),
		InputFileName:          row.InputFileName,
		InvNo:                  row.InvNo,
		UOM:                    row.UOM,
		Region:                 loc.Region,
		Country:                loc.Country,
		IsReversal:             row.TotalCharge < 0,
	}
}

func MapDomainRecordToStoreInvoiceRow(record domain.InvoiceRecord) store.InvoiceRow {
	return store.InvoiceRow{
		EventID:                record.ID,
		TotalCosts:             record.TotalCosts,
		Ccy:                    record.Currency,
		BillDate:               record.BillDate,
		ServiceCodeDescription: record.ServiceCodeDescription,
		EventDesc:              record.EventDesc,
		QtyAmt:                 record.QtyAmt,
		Rate:                   record.Rate,
		Charge:                 record.Charge,
		TaxCharge:              record.TaxCharge,
		TotalCharge:            record.TotalCharge,
		InvoiceICA:             record.InvoiceICA,
		CollectionMethod:       string(record.CollectionMethod),
		InputFileName:          record.InputFileName,
		InvNo:                  record.InvNo,
		UOM:                    record.UOM,
	}
}

func MapInvoiceStatsStoreToDomain(stats *store.InvoiceStats) *domain.InvoiceStats {
	if stats == nil {
		return nil
	}

	return &domain.InvoiceStats{
		RecordsCount:    stats.RecordsCount,
		FirstRecordTime: stats.FirstRecordTime,
	}
}

package sheetparse

import (
	"strings"

	"github.com/vfg2006/clinic-dashboard-api/internal/domain"
)

// defaultReferenceMonth é usado quando a linha 1 da aba de procedimentos não
// traz um mês reconhecível. O modelo distribuído às clínicas nasceu em
// Outubro e muitas cópias mantêm a célula vazia.
const defaultReferenceMonth = "Outubro"

// ExtractProcedures converte a aba "Procedimentos" em vendas individuais.
//
// Layout esperado: linha 1 contém apenas o mês de referência, linha 2 os
// cabeçalhos e linhas 3+ os dados. Linhas sem o campo Procedimento são
// descartadas; quantidade ausente ou inválida assume 1 (uma linha é pelo
// menos uma venda).
func ExtractProcedures(rows [][]string, clinicID string, year int) []*domain.ProcedureSale {
	if len(rows) < 2 {
		return nil
	}

	month := referenceMonth(rows[0])

	columns := make(map[int]catalogEntry)
	for col, cell := range rows[1] {
		if field, kind, ok := LookupProcedureColumn(strings.TrimSpace(cell)); ok {
			columns[col] = catalogEntry{Field: field, Kind: kind}
		}
	}
	if len(columns) == 0 {
		return nil
	}

	var sales []*domain.ProcedureSale
	for _, row := range rows[2:] {
		sale := &domain.ProcedureSale{
			ClinicID:       clinicID,
			Quantity:       1,
			ReferenceMonth: month,
			ReferenceYear:  year,
		}

		for col, entry := range columns {
			if col >= len(row) {
				continue
			}

			raw := strings.TrimSpace(row[col])
			if raw == "" {
				continue
			}

			assignProcedureField(sale, entry, raw)
		}

		if sale.Procedure == "" {
			continue
		}

		sales = append(sales, sale)
	}

	return sales
}

func referenceMonth(row []string) string {
	if len(row) > 0 {
		name := strings.TrimSpace(row[0])
		if _, ok := domain.MonthNumber(name); ok {
			return name
		}
	}
	return defaultReferenceMonth
}

func assignProcedureField(sale *domain.ProcedureSale, entry catalogEntry, raw string) {
	switch entry.Field {
	case FieldProcedure:
		sale.Procedure = raw
	case FieldCategory:
		sale.Category = raw
	case FieldQuantity:
		if n := ParseCount(raw); n > 0 {
			sale.Quantity = n
		}
	case FieldPaymentMethod:
		sale.PaymentMethod = raw
	case FieldSaleValue:
		sale.SaleValue = ParseCurrency(raw)
	case FieldInstallmentValue:
		sale.InstallmentValue = ParseCurrency(raw)
	case FieldFirstContactAt:
		sale.FirstContactAt = ParseDate(raw)
	case FieldAttendedAt:
		sale.AttendedAt = ParseDate(raw)
	case FieldClosedAt:
		sale.ClosedAt = ParseDate(raw)
	}
}

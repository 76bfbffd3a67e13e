package sheetparse

import "github.com/vfg2006/clinic-dashboard-api/internal/domain"

// FieldID identifica um campo canônico de MonthlyMetrics ou ProcedureSale.
// O pivô e o extrator nunca comparam rótulos de planilha diretamente; toda a
// correspondência rótulo → campo vive neste catálogo.
type FieldID string

// Kind é o tipo de valor de um campo reconhecido
type Kind int

const (
	KindCount Kind = iota
	KindCurrency
	KindPercentage
	KindDate
	KindText
)

const (
	FieldLeadsTotal            FieldID = "leads_total"
	FieldLeadsGoogleAds        FieldID = "leads_google_ads"
	FieldLeadsMetaAds          FieldID = "leads_meta_ads"
	FieldLeadsInstagramOrganic FieldID = "leads_instagram_organic"
	FieldLeadsReferral         FieldID = "leads_referral"
	FieldLeadsUnknownOrigin    FieldID = "leads_unknown_origin"

	FieldScheduledTotal     FieldID = "consultations_scheduled_total"
	FieldScheduledGoogleAds FieldID = "consultations_scheduled_google_ads"
	FieldScheduledMetaAds   FieldID = "consultations_scheduled_meta_ads"
	FieldScheduledIGOrganic FieldID = "consultations_scheduled_ig_organic"
	FieldScheduledReferral  FieldID = "consultations_scheduled_referral"
	FieldScheduledOther     FieldID = "consultations_scheduled_other"

	FieldAttended FieldID = "consultations_attended"

	FieldClosingsTotal     FieldID = "closings_total"
	FieldClosingsGoogleAds FieldID = "closings_google_ads"
	FieldClosingsMetaAds   FieldID = "closings_meta_ads"
	FieldClosingsIGOrganic FieldID = "closings_ig_organic"
	FieldClosingsReferral  FieldID = "closings_referral"
	FieldClosingsOther     FieldID = "closings_other"

	FieldRevenue               FieldID = "revenue"
	FieldTotalSpend            FieldID = "total_spend"
	FieldPlannedBudgetTotal    FieldID = "planned_budget_total"
	FieldRealizedSpendFacebook FieldID = "realized_spend_facebook"
	FieldPlannedSpendFacebook  FieldID = "planned_spend_facebook"
	FieldRealizedSpendGoogle   FieldID = "realized_spend_google"
	FieldPlannedSpendGoogle    FieldID = "planned_spend_google"

	FieldConvScheduledOverLeads    FieldID = "conv_scheduled_over_leads"
	FieldConvAttendedOverScheduled FieldID = "conv_attended_over_scheduled"
	FieldConvClosingsOverAttended  FieldID = "conv_closings_over_attended"
	FieldConvClosingsOverLeads     FieldID = "conv_closings_over_leads"

	FieldCostPerClosing   FieldID = "cost_per_closing"
	FieldROAS             FieldID = "roas"
	FieldCostPerLead      FieldID = "cost_per_lead"
	FieldCostPerScheduled FieldID = "cost_per_scheduled"
	FieldCostPerAttended  FieldID = "cost_per_attended"
	FieldAverageTicket    FieldID = "average_ticket"

	FieldProcedure        FieldID = "procedure"
	FieldCategory         FieldID = "category"
	FieldQuantity         FieldID = "quantity"
	FieldPaymentMethod    FieldID = "payment_method"
	FieldSaleValue        FieldID = "sale_value"
	FieldInstallmentValue FieldID = "installment_value"
	FieldFirstContactAt   FieldID = "first_contact_at"
	FieldAttendedAt       FieldID = "attended_at"
	FieldClosedAt         FieldID = "closed_at"
)

type catalogEntry struct {
	Field FieldID
	Kind  Kind
}

// metricLabels mapeia os rótulos das linhas da tabela larga para os campos
// canônicos. A comparação é exata, sensível a acento e caixa: as clínicas não
// podem ser obrigadas a padronizar as próprias planilhas, então o vocabulário
// precisa bater byte a byte com o modelo distribuído a elas.
var metricLabels = map[string]catalogEntry{
	"Leads Totais":              {FieldLeadsTotal, KindCount},
	"Leads Google Ads":          {FieldLeadsGoogleAds, KindCount},
	"Leads Meta Ads":            {FieldLeadsMetaAds, KindCount},
	"Leads Instagram Orgânico":  {FieldLeadsInstagramOrganic, KindCount},
	"Leads Indicação":           {FieldLeadsReferral, KindCount},
	"Leads Origem Desconhecida": {FieldLeadsUnknownOrigin, KindCount},

	"Consultas Marcadas Totais":      {FieldScheduledTotal, KindCount},
	"Consultas Marcadas Google Ads":  {FieldScheduledGoogleAds, KindCount},
	"Consultas Marcadas Meta Ads":    {FieldScheduledMetaAds, KindCount},
	"Consultas Marcadas IG Orgânico": {FieldScheduledIGOrganic, KindCount},
	"Consultas Marcadas Indicação":   {FieldScheduledReferral, KindCount},
	"Consultas Marcadas Outros":      {FieldScheduledOther, KindCount},

	"Consultas Comparecidas": {FieldAttended, KindCount},

	"Fechamentos Protocolos/Cirurgias": {FieldClosingsTotal, KindCount},
	"Fechamentos Google Ads":           {FieldClosingsGoogleAds, KindCount},
	"Fechamentos Meta Ads":             {FieldClosingsMetaAds, KindCount},
	"Fechamentos IG Orgânico":          {FieldClosingsIGOrganic, KindCount},
	"Fechamentos Indicação":            {FieldClosingsReferral, KindCount},
	"Fechamentos Outros":               {FieldClosingsOther, KindCount},

	"Faturamento":                       {FieldRevenue, KindCurrency},
	"Valor Investido Total (Realizado)": {FieldTotalSpend, KindCurrency},
	"Orçamento Previsto Total":          {FieldPlannedBudgetTotal, KindCurrency},
	"Orçamento Realizado Facebook Ads":  {FieldRealizedSpendFacebook, KindCurrency},
	"Orçamento Previsto Facebook Ads":   {FieldPlannedSpendFacebook, KindCurrency},
	"Orçamento Realizado Google Ads":    {FieldRealizedSpendGoogle, KindCurrency},
	"Orçamento Previsto Google Ads":     {FieldPlannedSpendGoogle, KindCurrency},

	"% de conversão Csm./leads":       {FieldConvScheduledOverLeads, KindPercentage},
	"% de conversão Csc./Csm.":        {FieldConvAttendedOverScheduled, KindPercentage},
	"% de conversão fechamento/Csc.":  {FieldConvClosingsOverAttended, KindPercentage},
	"% de conversão fechamento/leads": {FieldConvClosingsOverLeads, KindPercentage},

	"Custo por Compra (Cirurgias)":      {FieldCostPerClosing, KindCurrency},
	"Retorno Sobre Investimento (ROAS)": {FieldROAS, KindPercentage},
	"Custo por Lead Total":              {FieldCostPerLead, KindCurrency},
	"Custo por Consulta Marcada":        {FieldCostPerScheduled, KindCurrency},
	"Custo por Consulta Comparecida":    {FieldCostPerAttended, KindCurrency},
	"Ticket Médio":                      {FieldAverageTicket, KindCurrency},
}

// procedureColumns mapeia os cabeçalhos da aba "Procedimentos". O cabeçalho
// "Data Compareu na Consulta" está com a grafia da planilha original;
// corrigir aqui quebraria a correspondência com as planilhas em produção.
var procedureColumns = map[string]catalogEntry{
	"Procedimento":              {FieldProcedure, KindText},
	"Tipo":                      {FieldCategory, KindText},
	"Quantidade na Mesma Venda": {FieldQuantity, KindCount},
	"Forma de Pagamento":        {FieldPaymentMethod, KindText},
	"Valor da Venda":            {FieldSaleValue, KindCurrency},
	"Valor do Parcelado":        {FieldInstallmentValue, KindCurrency},
	"Data 1° Contato":           {FieldFirstContactAt, KindDate},
	"Data Compareu na Consulta": {FieldAttendedAt, KindDate},
	"Data Fechou Cirurgia":      {FieldClosedAt, KindDate},
}

// LookupMetric resolve o rótulo de uma linha da tabela larga.
// Rótulo desconhecido retorna ok=false e a linha é simplesmente ignorada.
func LookupMetric(label string) (FieldID, Kind, bool) {
	entry, ok := metricLabels[label]
	if !ok {
		return "", 0, false
	}
	return entry.Field, entry.Kind, true
}

// IsKnownMetric informa se o rótulo pertence ao vocabulário da tabela larga
func IsKnownMetric(label string) bool {
	_, ok := metricLabels[label]
	return ok
}

// LookupProcedureColumn resolve o cabeçalho de uma coluna da aba de procedimentos
func LookupProcedureColumn(label string) (FieldID, Kind, bool) {
	entry, ok := procedureColumns[label]
	if !ok {
		return "", 0, false
	}
	return entry.Field, entry.Kind, true
}

// MonthNumber resolve um token de mês canônico para o ordinal 1-12
func MonthNumber(label string) (int, bool) {
	return domain.MonthNumber(label)
}

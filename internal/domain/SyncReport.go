package domain

import "time"

// SyncStatus é o estado terminal da sincronização de uma clínica
type SyncStatus string

const (
	SyncStatusSynced          SyncStatus = "synced"
	SyncStatusSkippedNoSource SyncStatus = "skipped_no_source"
	SyncStatusFailed          SyncStatus = "failed"
)

// ClinicSyncOutcome é o resultado da sincronização de uma única clínica
type ClinicSyncOutcome struct {
	ClinicID          string     `json:"clinic_id"`
	ClinicName        string     `json:"clinic_name"`
	Status            SyncStatus `json:"status"`
	Detail            string     `json:"detail,omitempty"`
	MonthsWritten     int        `json:"months_written"`
	ProceduresWritten int        `json:"procedures_written"`
}

// SyncReport agrega os resultados de um lote completo de sincronização.
// Falhas individuais nunca interrompem o lote; aparecem aqui como outcomes
// com status failed e o motivo capturado.
type SyncReport struct {
	RunID      string               `json:"run_id"`
	StartedAt  time.Time            `json:"started_at"`
	FinishedAt time.Time            `json:"finished_at"`
	Outcomes   []*ClinicSyncOutcome `json:"outcomes"`
	Succeeded  int                  `json:"succeeded"`
	Failed     int                  `json:"failed"`
	Skipped    int                  `json:"skipped"`
}

// Add registra um outcome e atualiza os contadores agregados
func (r *SyncReport) Add(outcome *ClinicSyncOutcome) {
	r.Outcomes = append(r.Outcomes, outcome)

	switch outcome.Status {
	case SyncStatusSynced:
		r.Succeeded++
	case SyncStatusFailed:
		r.Failed++
	case SyncStatusSkippedNoSource:
		r.Skipped++
	}
}

package gsheets

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/vfg2006/clinic-dashboard-api/internal/config"
)

// Erros sentinela para o orquestrador distinguir falha de acesso de falha de
// leitura. Planilha removida ou sem compartilhamento com a service account
// não deve derrubar o lote inteiro.
var (
	ErrSpreadsheetNotFound = errors.New("planilha não encontrada")
	ErrPermissionDenied    = errors.New("acesso negado à planilha")
)

// Client abstrai a API do Google Sheets para o orquestrador de sincronização.
// ListWorksheets retorna os títulos das abas na ordem da planilha; GetValues
// retorna a grade de valores de uma aba como texto já formatado.
type Client interface {
	ListWorksheets(ctx context.Context, spreadsheetID string) ([]string, error)
	GetValues(ctx context.Context, spreadsheetID, worksheet string) ([][]string, error)
}

type GoogleService struct {
	svc *gsheet.Service
}

// New cria o cliente autenticado com as credenciais de service account da
// configuração (JSON inline ou caminho de arquivo).
func New(ctx context.Context, cfg *config.Config) (Client, error) {
	credentials, err := resolveCredentials(cfg)
	if err != nil {
		return nil, err
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentials),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o serviço do Google Sheets")
	}

	return &GoogleService{svc: svc}, nil
}

func resolveCredentials(cfg *config.Config) ([]byte, error) {
	if cfg.Google.CredentialsJSON != "" {
		return []byte(cfg.Google.CredentialsJSON), nil
	}

	if cfg.Google.CredentialsFile != "" {
		credentials, err := os.ReadFile(cfg.Google.CredentialsFile)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler o arquivo de credenciais do Google")
		}
		return credentials, nil
	}

	return nil, errors.New("credenciais do Google não configuradas")
}

func (s *GoogleService) ListWorksheets(ctx context.Context, spreadsheetID string) ([]string, error) {
	spreadsheet, err := s.svc.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, translateAPIError(err, spreadsheetID)
	}

	titles := make([]string, 0, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil {
			titles = append(titles, sheet.Properties.Title)
		}
	}

	return titles, nil
}

func (s *GoogleService) GetValues(ctx context.Context, spreadsheetID, worksheet string) ([][]string, error) {
	// O nome da aba vai entre aspas simples para sobreviver a espaços e
	// acentos ("'Controle de Leads'")
	rng := fmt.Sprintf("'%s'", worksheet)

	resp, err := s.svc.Spreadsheets.Values.Get(spreadsheetID, rng).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, translateAPIError(err, spreadsheetID)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		rows = append(rows, cells)
	}

	return rows, nil
}

func translateAPIError(err error, spreadsheetID string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 404:
			return errors.Wrap(ErrSpreadsheetNotFound, spreadsheetID)
		case 403:
			return errors.Wrap(ErrPermissionDenied, spreadsheetID)
		}
	}

	return errors.Wrapf(err, "erro ao consultar a planilha %s", spreadsheetID)
}

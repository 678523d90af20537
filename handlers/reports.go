package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/jaina/polo-report-service/keys"
	"github.com/jaina/polo-report-service/report"
)

const upstreamUnavailableMessage = "Integração com o Asaas não configurada"

// LedgerReport serves the historical ledger of a polo
func (h *Handler) LedgerReport(w http.ResponseWriter, req *http.Request) {

	var body report.Request
	if err := decode(req, &body); err != nil {
		writeError(w, req, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	result, err := h.Reports.Ledger(body)
	if err != nil {
		writeReportError(w, req, body.Polo, err)
		return
	}
	writeJSON(w, req, http.StatusOK, result)
}

// SettlementReport serves the payments a polo received inside a date window
func (h *Handler) SettlementReport(w http.ResponseWriter, req *http.Request) {

	var body report.Request
	if err := decode(req, &body); err != nil {
		writeError(w, req, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	result, err := h.Reports.Settlement(body)
	if err != nil {
		writeReportError(w, req, body.Polo, err)
		return
	}
	writeJSON(w, req, http.StatusOK, result)
}

// reportErrorBody echoes the requested polo so failed reports can be correlated from the body alone
type reportErrorBody struct {
	statusBody
	Polo string `json:"polo,omitempty"`
}

func writeReportError(w http.ResponseWriter, req *http.Request, polo string, err error) {

	var validationErr *report.ValidationError
	var noCustomersErr *report.NoCustomersError

	status := http.StatusInternalServerError
	mensagem := "Erro ao gerar relatório"
	polo = strings.TrimSpace(polo)

	switch {
	case errors.As(err, &validationErr):
		status, mensagem = http.StatusBadRequest, "Parâmetro inválido: "+validationErr.Error()
	case errors.Is(err, report.ErrUpstreamUnavailable):
		status, mensagem = http.StatusServiceUnavailable, upstreamUnavailableMessage
	case errors.As(err, &noCustomersErr):
		status = http.StatusNotFound
		if noCustomersErr.Resolution.Outcome() == report.OutcomePartial {
			status = http.StatusBadGateway
		}
		polo, mensagem = noCustomersErr.Polo, noCustomersErr.Message()
		log.InfoR(req, "no customers resolved", log.Data{keys.Polo: polo, keys.Message: err.Error()})
	default:
		log.ErrorR(req, err)
	}

	writeJSON(w, req, status, reportErrorBody{
		statusBody: statusBody{Status: report.StatusError, Mensagem: mensagem},
		Polo:       polo,
	})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/jaina/polo-report-service/directory"
	"github.com/jaina/polo-report-service/keys"
	"github.com/jaina/polo-report-service/report"
)

type loginRequest struct {
	ChaveAcesso string `json:"chave_acesso"`
}

type loginResponse struct {
	Status   string `json:"status"`
	Mensagem string `json:"mensagem"`
	Polo     string `json:"polo"`
	Parceiro string `json:"parceiro"`
	Chave    string `json:"chave"`
}

// Login checks a partner access key
func (h *Handler) Login(w http.ResponseWriter, req *http.Request) {

	var body loginRequest
	// a body that is not JSON is treated as an empty key
	_ = decode(req, &body)

	identity, err := h.Directory.Authorize(body.ChaveAcesso)
	switch {
	case err == nil:
		log.InfoR(req, "access granted", log.Data{keys.AccessKey: identity.Chave, keys.Polo: identity.Polo})
		writeJSON(w, req, http.StatusOK, loginResponse{
			Status:   report.StatusOK,
			Mensagem: "Acesso autorizado",
			Polo:     identity.Polo,
			Parceiro: identity.Nome,
			Chave:    identity.Chave,
		})
	case errors.Is(err, directory.ErrEmptyKey):
		writeError(w, req, http.StatusBadRequest, "Chave vazia")
	case errors.Is(err, directory.ErrInvalidKey):
		writeError(w, req, http.StatusUnauthorized, "Chave inválida")
	case errors.Is(err, directory.ErrExpiredKey):
		writeError(w, req, http.StatusForbidden, "Chave expirada")
	default:
		log.ErrorR(req, err)
		writeError(w, req, http.StatusInternalServerError, "Erro ao consultar chaves de acesso")
	}
}

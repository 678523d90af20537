package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/jaina/polo-report-service/directory"
	"github.com/jaina/polo-report-service/models"
	"github.com/jaina/polo-report-service/report"
)

// AdminTokenHeader carries the admin token on every admin request
const AdminTokenHeader = "X-Admin-Token"

// keyView is the admin representation of an access key
type keyView struct {
	Chave     string `json:"chave"`
	Nome      string `json:"nome"`
	Polo      string `json:"polo"`
	ExpiraEm  string `json:"expira_em"`
	Protegida bool   `json:"protegida"`
}

type keyListResponse struct {
	statusBody
	Total  int       `json:"total"`
	Chaves []keyView `json:"chaves"`
}

type keyResponse struct {
	statusBody
	Chave keyView `json:"chave"`
}

type deleteKeyRequest struct {
	Chave string `json:"chave"`
}

type deleteKeyResponse struct {
	statusBody
	Removida bool `json:"removida"`
}

func newKeyView(key models.PartnerKeyDao) keyView {
	return keyView{Chave: key.Chave, Nome: key.Nome, Polo: key.Polo, ExpiraEm: key.ExpiraEm, Protegida: key.Protegida}
}

// requireAdmin rejects requests without the admin token. With no token configured every
// request is let through.
func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if h.AdminToken != "" && subtle.ConstantTimeCompare([]byte(req.Header.Get(AdminTokenHeader)), []byte(h.AdminToken)) != 1 {
			log.InfoR(req, "admin request rejected")
			writeError(w, req, http.StatusForbidden, "Acesso administrativo negado")
			return
		}
		next(w, req)
	}
}

// ListKeys lists every access key ordered by name
func (h *Handler) ListKeys(w http.ResponseWriter, req *http.Request) {

	list, err := h.Directory.ListAll()
	if err != nil {
		log.ErrorR(req, err)
		writeError(w, req, http.StatusInternalServerError, "Erro ao consultar chaves de acesso")
		return
	}

	views := make([]keyView, 0, len(list))
	for _, key := range list {
		views = append(views, newKeyView(key))
	}

	writeJSON(w, req, http.StatusOK, keyListResponse{
		statusBody: statusBody{Status: report.StatusOK, Mensagem: "Chaves de acesso"},
		Total:      len(views),
		Chaves:     views,
	})
}

// CreateKey adds an access key
func (h *Handler) CreateKey(w http.ResponseWriter, req *http.Request) {

	var body directory.CreateRequest
	if err := decode(req, &body); err != nil {
		writeError(w, req, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	key, err := h.Directory.Create(body)
	if err != nil {
		writeDirectoryError(w, req, err)
		return
	}

	writeJSON(w, req, http.StatusOK, keyResponse{
		statusBody: statusBody{Status: report.StatusOK, Mensagem: "Chave criada com sucesso"},
		Chave:      newKeyView(*key),
	})
}

// UpdateKey changes an access key
func (h *Handler) UpdateKey(w http.ResponseWriter, req *http.Request) {

	var body directory.UpdateRequest
	if err := decode(req, &body); err != nil {
		writeError(w, req, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	key, err := h.Directory.Update(body)
	if err != nil {
		writeDirectoryError(w, req, err)
		return
	}

	writeJSON(w, req, http.StatusOK, keyResponse{
		statusBody: statusBody{Status: report.StatusOK, Mensagem: "Chave atualizada com sucesso"},
		Chave:      newKeyView(*key),
	})
}

// DeleteKey removes an access key
func (h *Handler) DeleteKey(w http.ResponseWriter, req *http.Request) {

	var body deleteKeyRequest
	if err := decode(req, &body); err != nil {
		writeError(w, req, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	deleted, err := h.Directory.Delete(body.Chave)
	if err != nil {
		status, mensagem := directoryErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.ErrorR(req, err)
		}
		writeJSON(w, req, status, deleteKeyResponse{
			statusBody: statusBody{Status: report.StatusError, Mensagem: mensagem},
			Removida:   false,
		})
		return
	}

	writeJSON(w, req, http.StatusOK, deleteKeyResponse{
		statusBody: statusBody{Status: report.StatusOK, Mensagem: "Chave removida com sucesso"},
		Removida:   deleted,
	})
}

func writeDirectoryError(w http.ResponseWriter, req *http.Request, err error) {
	status, mensagem := directoryErrorStatus(err)
	if status == http.StatusInternalServerError {
		log.ErrorR(req, err)
	}
	writeError(w, req, status, mensagem)
}

func directoryErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, directory.ErrInvalidRecord):
		return http.StatusBadRequest, "Registro inválido: " + strings.TrimPrefix(err.Error(), directory.ErrInvalidRecord.Error()+": ")
	case errors.Is(err, directory.ErrProtectedKey):
		return http.StatusForbidden, "Chave protegida não pode ser alterada ou removida"
	case errors.Is(err, directory.ErrKeyNotFound):
		return http.StatusNotFound, "Chave não encontrada"
	case errors.Is(err, directory.ErrKeyExists):
		return http.StatusConflict, "Chave já cadastrada"
	default:
		return http.StatusInternalServerError, "Erro ao gravar chave de acesso"
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/pat"
	"github.com/jaina/polo-report-service/directory"
	"github.com/jaina/polo-report-service/keys"
	"github.com/jaina/polo-report-service/registration"
	"github.com/jaina/polo-report-service/report"
)

// Handler carries the collaborators behind every endpoint
type Handler struct {
	Reports      report.Generator
	Directory    *directory.Directory
	Registration *registration.Service
	AdminToken   string
}

// statusBody is the envelope shared by every login, report and admin response
type statusBody struct {
	Status   string `json:"status"`
	Mensagem string `json:"mensagem"`
}

// Init registers every endpoint on the router
func Init(r *pat.Router, h *Handler) {
	log.Info("initialising endpoints, healthcheck beneath basePath: /polo-report-service")

	appRouter := r.PathPrefix("/polo-report-service").Subrouter()
	appRouter.Path("/healthcheck").Methods("GET").HandlerFunc(HealthCheck)

	r.Path("/teste").Methods("GET").HandlerFunc(Teste)
	r.Path("/login").Methods("POST").HandlerFunc(h.Login)

	r.Path("/api/relatorio_faturas").Methods("POST").HandlerFunc(h.LedgerReport)
	r.Path("/api/relatorio_pagamentos").Methods("POST").HandlerFunc(h.SettlementReport)
	r.Path("/api/cadastrar_aluno").Methods("POST").HandlerFunc(h.RegisterStudent)
	r.Path("/api/emitir_fatura").Methods("POST").HandlerFunc(h.IssueInvoice)

	r.Path("/admin/keys").Methods("GET").HandlerFunc(h.requireAdmin(h.ListKeys))
	r.Path("/admin/create_key").Methods("POST").HandlerFunc(h.requireAdmin(h.CreateKey))
	r.Path("/admin/update_key").Methods("POST").HandlerFunc(h.requireAdmin(h.UpdateKey))
	r.Path("/admin/delete_key").Methods("POST").HandlerFunc(h.requireAdmin(h.DeleteKey))
}

// HealthCheck returns 200 while the service is up
func HealthCheck(w http.ResponseWriter, req *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Teste answers the legacy liveness probe
func Teste(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, req, http.StatusOK, map[string]string{"mensagem": "Servidor funcionando com sucesso!"})
}

func writeJSON(w http.ResponseWriter, req *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ErrorR(req, err)
	}
	log.InfoR(req, "request completed", log.Data{keys.StatusCode: status})
}

func writeStatus(w http.ResponseWriter, req *http.Request, status int, body statusBody) {
	writeJSON(w, req, status, body)
}

func writeError(w http.ResponseWriter, req *http.Request, status int, mensagem string) {
	writeStatus(w, req, status, statusBody{Status: report.StatusError, Mensagem: mensagem})
}

// decode reads a JSON body. An empty body decodes to the zero value.
func decode(req *http.Request, v interface{}) error {
	if req.Body == nil {
		return nil
	}
	err := json.NewDecoder(req.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

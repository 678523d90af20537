package handlers

import (
	"errors"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/jaina/polo-report-service/asaas"
	"github.com/jaina/polo-report-service/registration"
	"github.com/shopspring/decimal"
)

type registrationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	AlunoID string `json:"aluno_id,omitempty"`
}

type invoiceResponse struct {
	Success       bool             `json:"success"`
	Message       string           `json:"message"`
	FaturaID      string           `json:"fatura_id,omitempty"`
	LinkPagamento string           `json:"link_pagamento,omitempty"`
	Valor         *decimal.Decimal `json:"valor,omitempty"`
	Vencimento    string           `json:"vencimento,omitempty"`
}

// RegisterStudent creates or updates the Asaas customer for a student
func (h *Handler) RegisterStudent(w http.ResponseWriter, req *http.Request) {

	var body registration.StudentRequest
	if err := decode(req, &body); err != nil {
		writeJSON(w, req, http.StatusBadRequest, registrationResponse{Message: "Corpo da requisição inválido"})
		return
	}

	result, err := h.Registration.RegisterStudent(body)
	switch {
	case err == nil:
		message := "Aluno cadastrado com sucesso!"
		if result.Updated {
			message = "Cadastro atualizado com sucesso!"
		}
		writeJSON(w, req, http.StatusOK, registrationResponse{Success: true, Message: message, AlunoID: result.AlunoID})
	case errors.Is(err, registration.ErrMissingFields):
		writeJSON(w, req, http.StatusBadRequest, registrationResponse{Message: "Campos obrigatórios: nome, cpf, complemento"})
	case errors.Is(err, asaas.ErrNotConfigured):
		writeJSON(w, req, http.StatusServiceUnavailable, registrationResponse{Message: upstreamUnavailableMessage})
	default:
		log.ErrorR(req, err)
		writeJSON(w, req, http.StatusInternalServerError, registrationResponse{Message: "Erro ao cadastrar aluno: " + err.Error()})
	}
}

// IssueInvoice issues an Asaas invoice for a registered student
func (h *Handler) IssueInvoice(w http.ResponseWriter, req *http.Request) {

	var body registration.InvoiceRequest
	if err := decode(req, &body); err != nil {
		writeJSON(w, req, http.StatusBadRequest, invoiceResponse{Message: "Corpo da requisição inválido"})
		return
	}

	payment, err := h.Registration.IssueInvoice(body)
	switch {
	case err == nil:
		writeJSON(w, req, http.StatusOK, invoiceResponse{
			Success:       true,
			Message:       "Fatura emitida com sucesso!",
			FaturaID:      payment.ID,
			LinkPagamento: payment.InvoiceURL,
			Valor:         &payment.Value,
			Vencimento:    payment.DueDate,
		})
	case errors.Is(err, registration.ErrMissingFields):
		writeJSON(w, req, http.StatusBadRequest, invoiceResponse{Message: "Campos obrigatórios: nome, cpf, valor, vencimento, descricao"})
	case errors.Is(err, asaas.ErrNotConfigured):
		writeJSON(w, req, http.StatusServiceUnavailable, invoiceResponse{Message: upstreamUnavailableMessage})
	case errors.Is(err, registration.ErrCustomerNotFound):
		writeJSON(w, req, http.StatusNotFound, invoiceResponse{Message: "Aluno não encontrado no Asaas para este CPF."})
	default:
		log.ErrorR(req, err)
		writeJSON(w, req, http.StatusInternalServerError, invoiceResponse{Message: "Erro ao emitir fatura: " + err.Error()})
	}
}

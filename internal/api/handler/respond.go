package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type failureEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// respondData escreve o payload no envelope de sucesso
func respondData(w http.ResponseWriter, r *http.Request, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(successEnvelope{Success: true, Data: data}); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}

// respondInternalError devolve a falha genérica ao cliente. O detalhe do
// erro fica apenas nos logs; nada da consulta ou do banco vaza na resposta
func respondInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(failureEnvelope{Success: false, Message: "Internal server error"})
}

// yearOrDefault aplica a mesma política leniente do trimestre: ano ausente
// ou inválido cai no ano padrão configurado
func yearOrDefault(raw string, defaultYear int) int {
	if raw == "" {
		return defaultYear
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return defaultYear
	}

	return year
}

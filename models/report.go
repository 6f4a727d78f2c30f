package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Numeric is a number that the mobile app may send either as a JSON number
// or as a string. Values that do not parse decode to zero; a malformed
// amount must not fail the whole report.
type Numeric float64

func (n *Numeric) UnmarshalJSON(data []byte) error {
	*n = 0
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return nil
		}
		s = strings.TrimSpace(str)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	*n = Numeric(d.InexactFloat64())
	return nil
}

// RawString preserves the client's original token whether it arrives as a
// JSON string or a bare number.
type RawString string

func (r *RawString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = RawString(s)
		return nil
	}
	token := strings.TrimSpace(string(data))
	if token == "null" {
		*r = ""
		return nil
	}
	*r = RawString(token)
	return nil
}

// Amount is the best-effort numeric value of the raw token, zero on garbage
func (r RawString) Amount() float64 {
	d, err := decimal.NewFromString(strings.TrimSpace(string(r)))
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

// Report is one field-inspection incident as submitted by the mobile app
type Report struct {
	Fecha            string  `json:"fecha"`
	Hora             string  `json:"hora"`
	Padron           string  `json:"padron"`
	Lugar            string  `json:"lugar"`
	Operador         string  `json:"operador"`
	Sentido          string  `json:"sentido"`
	TipoIncidencia   string  `json:"tipoIncidencia"`
	Falta            *string `json:"falta"`
	Cantidad         Numeric `json:"cantidad"`
	LugarBajadaFinal string  `json:"lugarBajadaFinal"`
	HoraBajadaFinal  string  `json:"horaBajadaFinal"`
	InspectorCod     string  `json:"inspectorCod"`
	InspectorName    string  `json:"inspectorName"`
	FullText         string  `json:"fullText"`

	UsuariosAdicionales []AdditionalUser       `json:"usuariosAdicionales"`
	Observaciones       []string               `json:"observaciones"`
	ReintegradoMontos   []RawString            `json:"reintegradoMontos"`
	BoletosMarcados     map[string][]Numeric   `json:"boletosMarcados"`
	RangoBoletos        map[string]TicketRange `json:"rangoBoletos"`
}

// AdditionalUser is one extra passenger recorded on a report
type AdditionalUser struct {
	Dinero      Numeric `json:"dinero"`
	LugarSubida string  `json:"lugarSubida"`
	LugarBajada string  `json:"lugarBajada"`
}

// TicketRange is the lowest and highest ticket number seen for a fare tier
type TicketRange struct {
	Min Numeric `json:"min"`
	Max Numeric `json:"max"`
}

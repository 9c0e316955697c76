package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/JonMunkholm/drinkseed/internal/core"
	"github.com/JonMunkholm/drinkseed/internal/measure"
	"github.com/JonMunkholm/drinkseed/internal/recipe"
)

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Mode   string `json:"parser_mode"`
	Sheets int    `json:"sheets"`
}

// SheetLayout describes one registered input sheet for GET /api/sheets.
type SheetLayout struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Columns []string `json:"columns"`
	Layout  string   `json:"layout"`
}

// ParseRequest is the body of POST /api/ingredients/parse. Phrases and
// Ingredients may be combined; Ingredients is split on ';' like a sheet cell.
type ParseRequest struct {
	Phrases     []string `json:"phrases"`
	Ingredients string   `json:"ingredients"`
}

// ParseResult describes how one phrase was handled.
type ParseResult struct {
	Phrase    string `json:"phrase"`
	Outcome   string `json:"outcome"`
	Rule      string `json:"rule,omitempty"`
	Name      string `json:"name,omitempty"`
	Amount    string `json:"amount,omitempty"`
	Unit      string `json:"unit,omitempty"`
	Canonical string `json:"canonical,omitempty"`
}

// ParseResponse lists results in request order and the distinct canonical
// names they produced.
type ParseResponse struct {
	Results   []ParseResult `json:"results"`
	Canonical []string      `json:"canonical"`
}

// InferRequest is the body of POST /api/drinks/infer.
type InferRequest struct {
	Preparation string `json:"preparation"`
}

// InferResponse holds the inferred drink attributes; unknown ones are empty.
type InferResponse struct {
	GlassType   string `json:"glass_type"`
	BuildMethod string `json:"build_method"`
	Garnish     string `json:"garnish"`
}

// OzResponse is returned by GET /api/measures/oz.
type OzResponse struct {
	Value    string `json:"value"`
	Standard string `json:"standard"`
}

// MlResponse is returned by GET /api/measures/ml.
type MlResponse struct {
	Ml       string `json:"ml"`
	Amount   string `json:"amount"`
	Unit     string `json:"unit"`
	Standard string `json:"standard,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	mode := "lenient"
	if s.kit.Parser.Mode() == recipe.Strict {
		mode = "strict"
	}
	writeJSON(w, r, http.StatusOK, HealthResponse{
		Status: "ok",
		Mode:   mode,
		Sheets: core.SheetCount(),
	})
}

func (s *Server) handleSheets(w http.ResponseWriter, r *http.Request) {
	defs := core.All()
	layouts := make([]SheetLayout, 0, len(defs))
	for _, def := range defs {
		layouts = append(layouts, SheetLayout{
			Key:     def.Info.Key,
			Label:   def.Info.Label,
			Columns: def.Info.Columns,
			Layout:  def.Describe(),
		})
	}
	writeJSON(w, r, http.StatusOK, layouts)
}

func (s *Server) handleParseIngredients(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if !s.decode(w, r, &req) {
		return
	}

	phrases := append(req.Phrases, recipe.SplitIngredients(req.Ingredients)...)
	if len(phrases) == 0 {
		s.respondError(w, r, errors.New("invalid request: no phrases given"), http.StatusBadRequest)
		return
	}

	canon := s.kit.NewCanon()
	resp := ParseResponse{Results: make([]ParseResult, 0, len(phrases))}
	for _, phrase := range phrases {
		if err := r.Context().Err(); err != nil {
			s.respondError(w, r, err, http.StatusServiceUnavailable)
			return
		}

		m, outcome := s.kit.Parser.Parse(phrase)
		result := ParseResult{Phrase: phrase, Outcome: outcome.String()}
		if outcome == recipe.Parsed {
			result.Rule = m.Rule
			result.Name = m.Name
			result.Amount = m.Amount
			result.Unit = m.Unit
			result.Canonical = canon.Resolve(m.Name)
		}
		resp.Results = append(resp.Results, result)
	}
	resp.Canonical = canon.Names()

	writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleInferDrink(w http.ResponseWriter, r *http.Request) {
	var req InferRequest
	if !s.decode(w, r, &req) {
		return
	}

	in := s.kit.Inferrer
	writeJSON(w, r, http.StatusOK, InferResponse{
		GlassType:   in.GlassType(req.Preparation),
		BuildMethod: in.BuildMethod(req.Preparation),
		Garnish:     in.Garnish(req.Preparation),
	})
}

func (s *Server) handleOzMeasure(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get("value")
	oz, ok := core.ParseFloat(value)
	if !ok {
		s.respondError(w, r, fmt.Errorf("invalid number: value=%q", value), http.StatusBadRequest)
		return
	}

	writeJSON(w, r, http.StatusOK, OzResponse{
		Value:    value,
		Standard: measure.ClosestStandard(oz),
	})
}

func (s *Server) handleMlMeasure(w http.ResponseWriter, r *http.Request) {
	ml := r.URL.Query().Get("amount")
	amount, unit, ok := measure.ConvertMl(ml)
	if !ok {
		s.respondError(w, r, fmt.Errorf("invalid number: amount=%q", ml), http.StatusBadRequest)
		return
	}

	resp := MlResponse{Ml: ml, Amount: amount, Unit: unit}
	if unit == "oz" {
		resp.Standard = measure.NormalizeOz(amount)
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// decode reads a JSON body into v, writing the error response itself on
// failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodySize)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		status, err := decodeError(err)
		s.respondError(w, r, err, status)
		return false
	}
	return true
}

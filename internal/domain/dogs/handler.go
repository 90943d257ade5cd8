package dogs

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"dog-registry/internal/platform/flash"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes limita el cuerpo de POST /dogs.
const maxBodyBytes = 64 << 10

func RegisterRoutes(r chi.Router, svc *Service, fl *flash.Store) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Post("/", createDogHandler(svc, fl))
		dr.Get("/create", createFormHandler(fl))
	})
}

// createDogRequest documenta el cuerpo aceptado (form o JSON).
type createDogRequest struct {
	Name             string `json:"name" example:"Rex"`
	BirthDate        string `json:"birth_date" example:"2019-03-08"`
	IsBirthDateExact bool   `json:"is_birth_date_exact" example:"true"`
}

// dogResponse representa un perro creado.
type dogResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	BirthDate        string    `json:"birth_date"`
	IsBirthDateExact bool      `json:"is_birth_date_exact"`
	CreatedAt        time.Time `json:"created_at"`
}

// validationErrorResponse es el 422 para clientes JSON.
type validationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// createDogHandler godoc
// @Summary Crear perro
// @Description Valida y registra un perro. Clientes HTML reciben 302 a `/dogs/create` con flash `success` o `errors`. Con `Accept: application/json` responde 201 o 422.
// @Tags dogs
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param payload body createDogRequest true "birth_date en formato YYYY-MM-DD"
// @Success 201 {object} dogResponse
// @Header 201 {string} Location "/dogs/create"
// @Success 302 {string} string "redirect a /dogs/create"
// @Failure 400 {string} string "invalid json / invalid form"
// @Failure 422 {object} validationErrorResponse
// @Router /dogs [post]
func createDogHandler(svc *Service, fl *flash.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		in, err := decodeInput(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		out := svc.Handle(r.Context(), in)

		if wantsJSON(r) {
			writeOutcomeJSON(w, out)
			return
		}

		msg := flash.Message{}
		if out.Succeeded() {
			msg.Values = out.Flash
		} else {
			msg.Errors = out.Errors
			msg.Old = oldInput(in)
		}

		if err := fl.Put(w, msg); errors.Is(err, flash.ErrTooLarge) {
			// sin old input: los errores tienen que llegar igual
			msg.Old = nil
			_ = fl.Put(w, msg)
		}

		http.Redirect(w, r, out.Redirect, http.StatusFound)
	}
}

func writeOutcomeJSON(w http.ResponseWriter, out Outcome) {
	if out.Succeeded() {
		w.Header().Set("Location", out.Redirect)
		writeJSON(w, http.StatusCreated, toDogResponse(out.Dog))
		return
	}

	message := "The given data was invalid."
	if out.Kind == OutcomeFailed {
		message = MsgCreationFailed
	}
	writeJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{
		Message: message,
		Errors:  out.Errors,
	})
}

var createFormTmpl = template.Must(template.New("create").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>New dog</title></head>
<body>
<h1>New dog</h1>
{{with .Success}}<p class="flash-success">{{.}}</p>{{end}}
{{with index .Errors "error"}}<p class="flash-error">{{.}}</p>{{end}}
<form method="post" action="/dogs">
  <label>Name <input type="text" name="name" value="{{index .Old "name"}}"></label>
  {{with index .Errors "name"}}<span class="field-error">{{.}}</span>{{end}}
  <label>Birth date <input type="date" name="birth_date" value="{{index .Old "birth_date"}}"></label>
  {{with index .Errors "birth_date"}}<span class="field-error">{{.}}</span>{{end}}
  <input type="hidden" name="is_birth_date_exact" value="0">
  <label><input type="checkbox" name="is_birth_date_exact" value="1" {{if .Exact}}checked="checked"{{end}}> Exact birth date</label>
  {{with index .Errors "is_birth_date_exact"}}<span class="field-error">{{.}}</span>{{end}}
  <button type="submit">Create</button>
</form>
</body>
</html>
`))

type createFormView struct {
	Success string
	Errors  map[string]string
	Old     map[string]string
	Exact   bool
}

// createFormHandler godoc
// @Summary Formulario de alta
// @Description Muestra el formulario y consume el flash pendiente (se lee una sola vez).
// @Tags dogs
// @Produce html
// @Success 200 {string} string "html"
// @Router /dogs/create [get]
func createFormHandler(fl *flash.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg, _ := fl.Pop(w, r)

		view := createFormView{
			Success: msg.Get("success"),
			Errors:  msg.Errors,
			Old:     msg.Old,
		}
		if b, ok := parseBool(msg.Old[FieldIsBirthDateExact]); ok {
			view.Exact = b
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := createFormTmpl.Execute(w, view); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// decodeInput arma el Input desde JSON o form.
// Para campos repetidos (checkbox + hidden) gana el último valor.
func decodeInput(r *http.Request) (Input, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch ct {
	case "application/json":
		in := Input{}
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(&in); err != nil {
			if errors.Is(err, io.EOF) {
				return Input{}, nil
			}
			return nil, errors.New("invalid json")
		}
		// un solo objeto: nada después del cierre
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return nil, errors.New("invalid json")
		}
		return in, nil

	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return nil, errors.New("invalid form")
		}
	default:
		if err := r.ParseForm(); err != nil {
			return nil, errors.New("invalid form")
		}
	}

	in := Input{}
	for k, vs := range r.PostForm {
		if len(vs) == 0 {
			continue
		}
		in[k] = vs[len(vs)-1]
	}
	return in, nil
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// oldInput devuelve lo enviado como texto, para volver a llenar el formulario.
func oldInput(in Input) map[string]string {
	out := map[string]string{}
	for _, f := range []string{FieldName, FieldBirthDate, FieldIsBirthDateExact} {
		v, ok := in[f]
		if !ok || v == nil {
			continue
		}
		switch x := v.(type) {
		case string:
			out[f] = x
		case bool, float64:
			out[f] = fmt.Sprint(x)
		}
	}
	return out
}

func toDogResponse(d Dog) dogResponse {
	return dogResponse{
		ID:               d.ID,
		Name:             d.Name,
		BirthDate:        d.BirthDate.Format(DateLayout),
		IsBirthDateExact: d.IsBirthDateExact,
		CreatedAt:        d.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

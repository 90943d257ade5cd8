// Package flash guarda mensajes de un solo uso entre un POST y el GET siguiente.
// Usa una sesión cookie de gorilla/sessions firmada (HMAC) con securecookie;
// el mensaje viaja como flash de la sesión y se borra al leerlo.
package flash

import (
	"encoding/gob"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const DefaultCookieName = "dog_registry_flash"

// maxCookieBytes deja margen bajo el límite típico de 4KB por cookie.
const maxCookieBytes = 3800

// flashTTL es la validez del timestamp firmado, en segundos.
const flashTTL = 10 * 60

var ErrTooLarge = errors.New("flash: message too large")

func init() {
	gob.Register(Message{})
	gob.Register([]interface{}{})
}

// Message es lo que sobrevive un redirect.
type Message struct {
	Values map[string]string
	Errors map[string]string
	Old    map[string]string
}

func (m Message) IsEmpty() bool {
	return len(m.Values) == 0 && len(m.Errors) == 0 && len(m.Old) == 0
}

// Get devuelve Values[key] ("" si no existe).
func (m Message) Get(key string) string { return m.Values[key] }

type Options struct {
	CookieName string
	Path       string
	Secure     bool

	// HashKey firma la cookie. Vacío => clave aleatoria por proceso
	// (los flashes no sobreviven un reinicio).
	HashKey []byte
}

type Store struct {
	name  string
	store *sessions.CookieStore
}

func New(opts Options) *Store {
	name := strings.TrimSpace(opts.CookieName)
	if name == "" {
		name = DefaultCookieName
	}
	path := opts.Path
	if path == "" {
		path = "/"
	}
	key := opts.HashKey
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
	}

	cs := sessions.NewCookieStore(key)
	cs.Options = &sessions.Options{
		Path:     path,
		MaxAge:   0, // cookie de sesión del navegador
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	for _, c := range cs.Codecs {
		if sc, ok := c.(*securecookie.SecureCookie); ok {
			// el límite de tamaño lo controla Put
			sc.MaxLength(0)
			sc.MaxAge(flashTTL)
		}
	}

	return &Store{name: name, store: cs}
}

func (s *Store) CookieName() string { return s.name }

// Put agrega la cookie flash a la respuesta. Debe llamarse antes de escribir headers.
func (s *Store) Put(w http.ResponseWriter, m Message) error {
	sess := sessions.NewSession(s.store, s.name)
	opts := *s.store.Options
	sess.Options = &opts
	sess.AddFlash(m)

	encoded, err := securecookie.EncodeMulti(s.name, sess.Values, s.store.Codecs...)
	if err != nil {
		return err
	}
	if len(encoded) > maxCookieBytes {
		return ErrTooLarge
	}

	http.SetCookie(w, sessions.NewCookie(s.name, encoded, sess.Options))
	return nil
}

// Pop lee el flash del request y lo expira en la respuesta.
// Una cookie adulterada, vencida o corrupta se descarta igual que una ausente.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) (Message, bool) {
	if _, err := r.Cookie(s.name); err != nil {
		return Message{}, false
	}

	sess, err := s.store.Get(r, s.name)
	if err != nil {
		sess = sessions.NewSession(s.store, s.name)
	}
	flashes := sess.Flashes()

	opts := *s.store.Options
	opts.MaxAge = -1
	sess.Options = &opts
	_ = s.store.Save(r, w, sess)

	if err != nil {
		return Message{}, false
	}
	m, ok := firstMessage(flashes)
	return m, ok && !m.IsEmpty()
}

// Decode verifica la firma y extrae el mensaje del valor crudo de la cookie.
func (s *Store) Decode(value string) (Message, error) {
	values := make(map[interface{}]interface{})
	if err := securecookie.DecodeMulti(s.name, value, &values, s.store.Codecs...); err != nil {
		return Message{}, err
	}

	sess := sessions.NewSession(s.store, s.name)
	sess.Values = values
	m, ok := firstMessage(sess.Flashes())
	if !ok {
		return Message{}, errors.New("flash: no message")
	}
	return m, nil
}

// FromResponse busca la cookie flash en una respuesta ya escrita (tests, clientes).
func (s *Store) FromResponse(res *http.Response) (Message, bool) {
	for _, c := range res.Cookies() {
		if c.Name != s.name || c.Value == "" || c.MaxAge < 0 {
			continue
		}
		m, err := s.Decode(c.Value)
		if err != nil {
			return Message{}, false
		}
		return m, true
	}
	return Message{}, false
}

func firstMessage(flashes []interface{}) (Message, bool) {
	for _, f := range flashes {
		if m, ok := f.(Message); ok {
			return m, true
		}
	}
	return Message{}, false
}

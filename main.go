package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/weld-framework/weld/framework/app"
	"github.com/weld-framework/weld/framework/container"
	gohttp "github.com/weld-framework/weld/framework/http"
	"github.com/weld-framework/weld/framework/providers"
	"github.com/weld-framework/weld/framework/routing"
)

// ── Demo service graph ───────────────────────────────────────────────────────

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// GreetingStore is a pre-built pool instance.
type GreetingStore struct {
	byLocale map[string]string
}

func NewGreetingStore() *GreetingStore {
	return &GreetingStore{byLocale: map[string]string{
		"en": "Hello",
		"fr": "Bonjour",
		"de": "Hallo",
	}}
}

func (s *GreetingStore) Greeting(locale string) string {
	if g, ok := s.byLocale[locale]; ok {
		return g
	}
	return s.byLocale["en"]
}

// Greeter is auto-wired: the container resolves its dependencies and picks
// the most fully-specified constructor.
type Greeter struct {
	store  *GreetingStore
	clock  Clock
	locale string
}

func NewGreeter(store *GreetingStore, clock Clock) *Greeter {
	return &Greeter{store: store, clock: clock, locale: "en"}
}

// NewGreeterWithLocale outranks NewGreeter (three parameters against two);
// the locale parameter carries a registered default, so the constructor
// stays eligible even though no string is resolvable.
func NewGreeterWithLocale(store *GreetingStore, clock Clock, locale string) *Greeter {
	return &Greeter{store: store, clock: clock, locale: locale}
}

func (g *Greeter) Greet(name string) string {
	return fmt.Sprintf("%s, %s! It is %s.",
		g.store.Greeting(g.locale), name, g.clock.Now().Format(time.Kitchen))
}

// ── Provider ─────────────────────────────────────────────────────────────────

type greeterProvider struct {
	providers.BaseProvider
}

func (p *greeterProvider) Register(b *providers.Builder) {
	b.Instance(NewGreetingStore())
	b.Instance(SystemClock{})
}

// ── Bootstrap ────────────────────────────────────────────────────────────────

func main() {
	container.MustProvide(NewGreeter)
	container.MustProvide(NewGreeterWithLocale, container.WithDefault(2, "en"))

	application := app.MustNew(&greeterProvider{})
	r := application.Router()

	r.Get("/greet/{name}", func(w http.ResponseWriter, req *http.Request) {
		res := gohttp.NewResponse(w)

		greeter, err := container.ResolveAs[*Greeter](application.Resolver())
		if err != nil {
			res.Error(http.StatusInternalServerError, err.Error())
			return
		}
		res.Success(map[string]any{
			"greeting": greeter.Greet(routing.Param(req, "name")),
		})
	})

	if err := application.Run(); err != nil {
		log.Fatal(err)
	}
}

package app

import (
	"net/http"
	"strconv"

	"github.com/km-arc/learn-di/app/cases"
	"github.com/km-arc/learn-di/framework/config"
	gohttp "github.com/km-arc/learn-di/framework/http"
	"github.com/km-arc/learn-di/framework/http/validation"
	"github.com/km-arc/learn-di/framework/routing"
)

// Query parameters overriding the configured showcase values for one run.
const (
	qWindowsPrice = "windows_price"
	qLinuxPrice   = "linux_price"
	qMemorySize   = "memory_size"
	qBluetooth    = "bluetooth"
	qColor        = "color"
)

var overrideRules = validation.Rules{
	qWindowsPrice: "nullable|integer|gte:0",
	qLinuxPrice:   "nullable|integer|gte:0",
	qMemorySize:   "nullable|integer|gte:1",
	qBluetooth:    "nullable|version",
	qColor:        "nullable|alpha",
}

const headerComponent = "X-Component-Id"

type caseSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type caseResult struct {
	caseSummary
	Output string `json:"output"`
}

func (a *Application) routes() {
	r := a.router

	r.Get("/", a.showInfo)
	r.Group(func(g *routing.Router) {
		g.Middleware(a.componentHeader)
		g.Get("/bindings", a.listBindings)
		g.Prefix("/cases", func(cr *routing.Router) {
			cr.Get("/", a.listCases)
			cr.Get("/{id}", a.runCaseHandler)
		})
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		gohttp.NewResponse(w).NotFound()
	})
}

// componentHeader tags responses resolved against the root component with
// its id.
func (a *Application) componentHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(headerComponent, a.root.ID())
		next.ServeHTTP(w, r)
	})
}

// GET /
func (a *Application) showInfo(w http.ResponseWriter, _ *http.Request) {
	gohttp.NewResponse(w).Success(map[string]any{
		"name":      a.cfg.App.Name,
		"env":       a.Environment(),
		"debug":     a.IsDebug(),
		"version":   a.Version(),
		"component": a.root.Name(),
		"id":        a.root.ID(),
		"strict":    a.cfg.Container.Strict,
	})
}

// GET /bindings
func (a *Application) listBindings(w http.ResponseWriter, _ *http.Request) {
	gohttp.NewResponse(w).Success(a.root.Bindings())
}

// GET /cases
func (a *Application) listCases(w http.ResponseWriter, _ *http.Request) {
	all := cases.All()
	out := make([]caseSummary, 0, len(all))
	for _, c := range all {
		out = append(out, caseSummary{ID: c.ID, Title: c.Title})
	}
	gohttp.NewResponse(w).Success(out)
}

// GET /cases/{id}
func (a *Application) runCaseHandler(w http.ResponseWriter, r *http.Request) {
	req := gohttp.NewRequest(r)
	res := gohttp.NewResponse(w)

	c, ok := cases.Find(req.RouteParam("id"))
	if !ok {
		res.NotFound("No such case.")
		return
	}

	v := validation.Make(req.Queries(qWindowsPrice, qLinuxPrice, qMemorySize, qBluetooth, qColor), overrideRules)
	if v.Fails() {
		res.ValidationError(v.Errors())
		return
	}

	out, err := a.runCase(c, a.envWith(overrideShowcase(a.cfg.Showcase, req)))
	if err != nil {
		res.ServerError(err.Error())
		return
	}

	if req.WantsJSON() {
		res.Success(caseResult{caseSummary: caseSummary{ID: c.ID, Title: c.Title}, Output: out})
		return
	}
	res.Text(http.StatusOK, out)
}

// overrideShowcase applies the validated query overrides to s.
func overrideShowcase(s config.ShowcaseConfig, req *gohttp.Request) config.ShowcaseConfig {
	ints := map[string]*int{
		qWindowsPrice: &s.WindowsPrice,
		qLinuxPrice:   &s.LinuxPrice,
		qMemorySize:   &s.MemorySize,
	}
	for key, dst := range ints {
		if req.Has(key) {
			*dst, _ = strconv.Atoi(req.Query(key))
		}
	}
	s.BluetoothVersion = req.Query(qBluetooth, s.BluetoothVersion)
	s.ActivityColor = req.Query(qColor, s.ActivityColor)
	return s
}

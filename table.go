package rroute

import (
	"strconv"
	"strings"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rroute/core/rtr"
)

// RouteTableHTML renders the registered routes as an HTML page.
func (r *Router) RouteTableHTML() string {
	b := element.NewBuilder()
	element.RenderComponents(b, routeTable{
		Title:   "Routes",
		Schemes: r.Schemes(),
		Routes:  r.Routes(),
	})
	return b.String()
}

// routeTable is the page listing registered routes.
type routeTable struct {
	Title   string
	Schemes []string
	Routes  []rtr.RouteList
}

func (rt routeTable) Render(b *element.Builder) any {
	b.Html().R(
		b.Head().R(
			b.Title().T(rt.Title),
			b.Style().T(`
				body { font-family: monospace; margin: 20px; }
				table { border-collapse: collapse; }
				th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
			`),
		),
		b.Body().R(
			b.H1().T(rt.Title),
			func() any {
				if len(rt.Schemes) > 0 {
					b.P().T("Schemes: " + strings.Join(rt.Schemes, ", "))
				}
				return nil
			}(),
			b.Table().R(
				b.Tr().R(
					b.Th().T("Pattern"),
					b.Th().T("Target"),
				),
				func() any {
					for _, route := range rt.Routes {
						b.Tr().R(
							b.Td().T(route.Pattern),
							b.Td().T(route.HandlerRef),
						)
					}
					return nil
				}(),
			),
			b.P().T(routeCount(len(rt.Routes))),
		),
	)
	return nil
}

func routeCount(n int) string {
	if n == 1 {
		return "1 route"
	}
	return strconv.Itoa(n) + " routes"
}

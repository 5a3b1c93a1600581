package testutil

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/activitymap/internal/app/system/activitycsv"
	"github.com/dalemusser/activitymap/internal/app/system/categories"
	"github.com/dalemusser/activitymap/internal/app/system/derive"
	"github.com/dalemusser/activitymap/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// SampleCatalog is a small catalog in the published file format: a header,
// comment lines, one malformed line (line 6), one activity with an unknown
// category code and one with a version outside 1..4.
//
// Technology categories in discovery order: Core, IoT, Web.
const SampleCatalog = `name;description;frequency;detail;system;version;category;requirements;complexity;techCategory
### OPERACIÓN INTERNA
"Check-in";"Guest arrival";"Diario";"";"PMS";"1";"IH-Op";"PMS,WiFi";2;"Core"
"Control de accesos";"Monitoreo de cámaras y puertas";"Continuo 24/7";"Turno de noche";"CCTV";"1";"IH-Seg";"CCTV,Sensores";3;"IoT"
"Inventario";"Conteo de almacén";"Semanal";"";"ERP";"2";"IH-Log";"ERP";1;"Core"
"Linea rota";"sin campos suficientes"
### SERVICIOS EXTERNOS
"Tours locales";"Reserva de excursiones";"Diario";"";"Booking";"2";"EX-Tur";"Booking,PMS";2;"Web"
"Traslados";"Transporte al aeropuerto";"Bajo demanda";"";"Fleet";"3";"EX-Trans";"GPS,Fleet";3;"Web"

"Reservas online";"Motor de reservas web";"24/7";"";"Web";"1";"DIG-Res";"Web,PMS,Pagos";3;"Web"
"Chat huéspedes";"Mensajería con el huésped";"Continuo";"";"Chat";"4";"MIX-Dig";"Chat,IA";2;"Core"
"Predicción de ocupación";"Modelo de demanda";"Mensual";"";"BI";"4";"AN-Pred";"BI,IA";3;"IoT"
"Mantenimiento externo";"Proveedor sin categoría conocida";"Mensual";"";"ERP";"2";"ZZ-Ext";"ERP";1;"Core"
"Piloto futuro";"Versión fuera de rango";"Diario";"";"Lab";"5";"IH-Op";"IA";2;"Web"
`

// SampleActivityCount is the number of valid activities in SampleCatalog.
const SampleActivityCount = 10

// SampleCategories returns the embedded default category table.
func SampleCategories(t testing.TB) *categories.Table {
	t.Helper()
	tbl, err := categories.Default()
	if err != nil {
		t.Fatalf("load default categories: %v", err)
	}
	return tbl
}

// SampleActivities parses and enriches SampleCatalog with deterministic IDs
// ("act-1", "act-2", ...).
func SampleActivities(t testing.TB) []models.Activity {
	t.Helper()
	return ParseActivities(t, SampleCatalog)
}

// ParseActivities parses and enriches an arbitrary catalog text.
func ParseActivities(t testing.TB, catalog string) []models.Activity {
	t.Helper()
	parsed, err := activitycsv.Parse(strings.NewReader(catalog), activitycsv.ParseOptions{})
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}
	return derive.Enrich(parsed.Records, SequentialIDs("act")).Activities
}

// SequentialIDs returns an ID generator yielding prefix-1, prefix-2, ...
func SequentialIDs(prefix string) derive.IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// FindActivity returns the activity with the given name or fails the test.
func FindActivity(t testing.TB, activities []models.Activity, name string) models.Activity {
	t.Helper()
	for _, a := range activities {
		if a.Name == name {
			return a
		}
	}
	t.Fatalf("activity %q not found", name)
	return models.Activity{}
}

// TestContext returns a context with a timeout suitable for tests.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

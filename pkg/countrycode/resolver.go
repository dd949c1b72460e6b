package countrycode

import (
	"strings"
	"unicode"

	"github.com/biter777/countries"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// defaultOverrides fixa nomes cujo mapeamento ISO não bate com a grafia usada nos dados de clientes.
var defaultOverrides = map[string]string{
	"Russia": "RUS",
	"Turkey": "TUR",
}

// commonNames cobre grafias de uso corrente que diferem do nome curto da ISO 3166-1.
var commonNames = map[string]string{
	"United States":  "USA",
	"United Kingdom": "GBR",
	"South Korea":    "KOR",
	"North Korea":    "PRK",
	"Czech Republic": "CZE",
	"Vietnam":        "VNM",
	"Iran":           "IRN",
	"Côte d'Ivoire":  "CIV",
	"UAE":            "ARE",
}

// Resolver converte nomes de país em códigos ISO 3166-1 alpha-3.
type Resolver struct {
	overrides map[string]string
	index     map[string]string
}

type Option func(*Resolver)

// WithOverride adiciona ou substitui um mapeamento fixo nome -> alpha-3.
func WithOverride(name, alpha3 string) Option {
	return func(r *Resolver) {
		r.overrides[fold(name)] = strings.ToUpper(strings.TrimSpace(alpha3))
	}
}

func New(opts ...Option) *Resolver {
	all := countries.All()

	r := &Resolver{
		overrides: make(map[string]string, len(defaultOverrides)),
		index:     make(map[string]string, len(all)*3+len(commonNames)),
	}

	for name, code := range defaultOverrides {
		r.overrides[fold(name)] = code
	}

	for _, c := range all {
		if c == countries.Unknown {
			continue
		}
		alpha3 := c.Alpha3()
		if len(alpha3) != 3 {
			continue
		}
		r.index[fold(c.Alpha2())] = alpha3
		r.index[fold(alpha3)] = alpha3
		r.index[fold(c.String())] = alpha3
	}

	for name, code := range commonNames {
		r.index[fold(name)] = code
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Alpha3 devolve o código do país e false quando o nome não é reconhecido.
// Nomes fora do índice passam pela busca por nome da biblioteca, que aceita nomes oficiais e variantes.
func (r *Resolver) Alpha3(name string) (string, bool) {
	key := fold(name)
	if key == "" {
		return "", false
	}

	if code, ok := r.overrides[key]; ok {
		return code, true
	}

	if code, ok := r.index[key]; ok {
		return code, true
	}

	if c := countries.ByName(name); c != countries.Unknown {
		return c.Alpha3(), true
	}

	return "", false
}

// fold normaliza para comparação: sem acentos, sem caixa e com espaços colapsados.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	return strings.Join(strings.Fields(cases.Fold().String(stripped)), " ")
}

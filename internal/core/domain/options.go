package domain

var (
	TaxRegimes   = []string{"Simples Nacional", "Lucro Presumido", "Lucro Real", "Imune"}
	LegalNatures = []string{"MEI", "LTDA", "SA", "EIRELI", "DEMAIS"}
	CompanySizes = []string{"MEI", "Microempresa", "Pequeno Porte", "Médio Porte", "Grande Porte"}
)

// Options returns the fixed choice list of the given kind.
func Options(kind string) ([]string, bool) {
	switch kind {
	case "regimes-tributarios":
		return TaxRegimes, true
	case "naturezas-juridicas":
		return LegalNatures, true
	case "portes-empresa":
		return CompanySizes, true
	case "modalidades":
		return Modalities, true
	case "tipos-usuario":
		return Roles, true
	}
	return nil, false
}

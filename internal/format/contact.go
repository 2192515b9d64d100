package format

import "github.com/c7harry/bayform/internal/types"

// ContactItems assembles the non-empty contact fields of info in fixed
// priority order: location, email, phone (formatted), website, LinkedIn.
// Join delimiters are a per-template presentation decision and are applied by
// each renderer, not here.
func ContactItems(info types.PersonalInfo) []string {
	candidates := []string{
		info.Location,
		info.Email,
		FormatPhone(info.Phone),
		info.Website,
		info.LinkedIn,
	}

	items := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != "" {
			items = append(items, c)
		}
	}
	return items
}

// ContactLine joins the assembled contact items with the given delimiter.
func ContactLine(info types.PersonalInfo, delimiter string) string {
	items := ContactItems(info)
	if len(items) == 0 {
		return ""
	}
	line := items[0]
	for _, item := range items[1:] {
		line += delimiter + item
	}
	return line
}

package actors

// Blacklist enumerates known false-positive phrases. Callers remove these
// from the text before matching the dutyholder library: each contains a
// library alternative that does not indicate an actor in context.
func Blacklist() []string {
	return []string{
		"local authority collected municipal waste",
		"waste collection authority area",
		"personal data",
		"person aggrieved",
		"in person",
		"reasonable person",
		"body of water",
		"company voluntary arrangement",
		"court of protection order",
		"holding company",
		"public register",
		"public place",
		"public road",
		"public sewer",
		"public nature",
		"made public",
		"general public interest",
	}
}

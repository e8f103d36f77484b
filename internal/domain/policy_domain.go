package domain

// PolicyDomain is a policy area simulations can be scoped to.
type PolicyDomain struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// policyDomains is the built-in catalog, ordered by name.
var policyDomains = []PolicyDomain{
	{Name: "Agriculture", Slug: "agriculture", Description: "Farm subsidies, MSP, agricultural reforms, and rural development"},
	{Name: "Education", Slug: "education", Description: "School funding, higher education, scholarships, and educational reforms"},
	{Name: "Employment", Slug: "employment", Description: "Labor laws, minimum wage, unemployment benefits, and worker rights"},
	{Name: "Environment", Slug: "environment", Description: "Climate policy, renewable energy, pollution control, and conservation"},
	{Name: "Healthcare", Slug: "healthcare", Description: "Universal healthcare, insurance, public health initiatives"},
	{Name: "Housing", Slug: "housing", Description: "Affordable housing, rent control, property tax, and urban development"},
	{Name: "Social Welfare", Slug: "social-welfare", Description: "Pension schemes, disability benefits, food security, and social safety nets"},
	{Name: "Taxation", Slug: "taxation", Description: "Income tax, GST, corporate tax, and other taxation policies"},
	{Name: "Technology", Slug: "technology", Description: "Digital infrastructure, data privacy, cybersecurity, and tech regulation"},
	{Name: "Transportation", Slug: "transportation", Description: "Public transit, infrastructure, vehicle regulations, and urban mobility"},
}

// PolicyDomains returns the catalog of known policy domains, ordered by name.
// The returned slice is a copy; callers may modify it freely.
func PolicyDomains() []PolicyDomain {
	out := make([]PolicyDomain, len(policyDomains))
	copy(out, policyDomains)
	return out
}

// PolicyDomainBySlug looks up a catalog entry by its slug.
func PolicyDomainBySlug(slug string) (PolicyDomain, bool) {
	for _, d := range policyDomains {
		if d.Slug == slug {
			return d, true
		}
	}
	return PolicyDomain{}, false
}

package layouts

// CalculateTitle builds the document title: "Page - Site", or just the site
// title on pages without their own.
func CalculateTitle(title, site string) string {
	if site == "" {
		site = "Portfolio"
	}
	if title != "" {
		return title + " - " + site
	}
	return site
}

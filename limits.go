package pagination

const (
	DefaultPerPage = 10
	MaxPerPage     = 100

	DefaultMaxPagesToShow = 10
	MinPagesToShow        = 3

	DefaultPreviousText = "Previous"
	DefaultNextText     = "Next"
)

func IsNormalizedPerPageMax(perPage int, maxPerPage int) (int, bool) {
	if perPage <= 0 {
		return DefaultPerPage, false
	} else if perPage > maxPerPage {
		return maxPerPage, false
	}

	return perPage, true
}

func NormalizePerPageMax(perPage int, maxPerPage int) int {
	ret, _ := IsNormalizedPerPageMax(perPage, maxPerPage)
	return ret
}

func NormalizePerPage(perPage int) int {
	return NormalizePerPageMax(perPage, MaxPerPage)
}

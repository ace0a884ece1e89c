package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams controls the ordering of list queries. Lists are never paginated.
type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// OrderBy returns QueryParams sorting by the given column and direction.
func OrderBy(column, direction string) QueryParams {
	return QueryParams{SortBy: column, SortDir: direction}
}

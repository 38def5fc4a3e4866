package entity

// SearchPage ответ поиска по маркету в том виде, в котором он уходит клиенту
// и кладётся в кэш.
type SearchPage struct {
	Results   []WeaponListing `json:"results"`
	IDResults []string        `json:"idResults"`
	Page      PageInfo        `json:"page"`
}

type PageInfo struct {
	CurPage   int   `json:"curPage"`
	CurOffset int   `json:"curOffset"`
	Total     int64 `json:"total"`
	PageSize  int   `json:"pageSize"`
	NumPages  int64 `json:"numPages"`
}

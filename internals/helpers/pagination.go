package helper

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultPage      = 1
	DefaultPageParam = "page"
)

// Ukuran halaman per view (konstanta, bukan dari query user).
const (
	PerPageAdmin        = 6
	PerPageAdminLarge   = 10
	PerPageAdminGallery = 8
	PerPagePublic       = 6
	PerPagePublicCourse = 8
	PerPagePublicGrid   = 9
)

// SortKey satu kolom urutan kanonik sebuah listing.
type SortKey struct {
	Column string
	Desc   bool
}

func Asc(col string) SortKey  { return SortKey{Column: col} }
func Desc(col string) SortKey { return SortKey{Column: col, Desc: true} }

// Page hasil paginasi + metadata navigasi untuk template.
type Page[T any] struct {
	Items      []T
	Number     int
	NumPages   int
	PerPage    int
	Total      int64
	HasPrev    bool
	HasNext    bool
	PrevNumber int
	NextNumber int
	StartIndex int // 1-based index item pertama (0 kalau kosong)
	PageRange  []int

	Param string     // nama query param, default "page"
	Keep  url.Values // filter lain yang ikut di link halaman
}

// Link membangun query string untuk halaman n, filter lain tetap terbawa.
func (p Page[T]) Link(n int) string {
	v := url.Values{}
	for k, vals := range p.Keep {
		for _, s := range vals {
			if s != "" {
				v.Add(k, s)
			}
		}
	}
	param := p.Param
	if param == "" {
		param = DefaultPageParam
	}
	v.Set(param, strconv.Itoa(n))
	return "?" + v.Encode()
}

// ApplyOrder menerapkan urutan kanonik ke query.
func ApplyOrder(q *gorm.DB, order []SortKey) *gorm.DB {
	for _, k := range order {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: k.Column}, Desc: k.Desc})
	}
	return q
}

// NumPagesFor: minimal 1 halaman walau koleksi kosong.
func NumPagesFor(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// ResolvePage mengubah token halaman eksternal jadi nomor halaman valid:
// bukan bilangan bulat positif → 1, melebihi halaman terakhir → halaman terakhir.
func ResolvePage(token string, numPages int) int {
	if numPages < 1 {
		numPages = 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || n < 1 {
		return DefaultPage
	}
	if n > numPages {
		return numPages
	}
	return n
}

func newPage[T any](items []T, number, perPage int, total int64) Page[T] {
	numPages := NumPagesFor(total, perPage)
	if items == nil {
		items = []T{}
	}
	p := Page[T]{
		Items:    items,
		Number:   number,
		NumPages: numPages,
		PerPage:  perPage,
		Total:    total,
		HasPrev:  number > 1,
		HasNext:  number < numPages,
		Param:    DefaultPageParam,
	}
	if p.HasPrev {
		p.PrevNumber = number - 1
	}
	if p.HasNext {
		p.NextNumber = number + 1
	}
	if len(items) > 0 {
		p.StartIndex = (number-1)*perPage + 1
	}
	p.PageRange = make([]int, numPages)
	for i := range p.PageRange {
		p.PageRange[i] = i + 1
	}
	return p
}

// Paginate memotong slice yang sudah terurut jadi satu halaman.
func Paginate[T any](items []T, perPage int, token string) Page[T] {
	if perPage <= 0 {
		perPage = PerPageAdmin
	}
	total := int64(len(items))
	number := ResolvePage(token, NumPagesFor(total, perPage))

	start := (number - 1) * perPage
	end := start + perPage
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	window := append([]T(nil), items[start:end]...)
	return newPage(window, number, perPage, total)
}

// PaginateQuery: COUNT + OFFSET/LIMIT dengan aturan halaman yang sama.
// q sebaiknya sudah di-Model(...) dan berisi filter (Where) listing tsb.
func PaginateQuery[T any](ctx context.Context, q *gorm.DB, order []SortKey, perPage int, token string) (Page[T], error) {
	if perPage <= 0 {
		perPage = PerPageAdmin
	}
	tx := q.WithContext(ctx).Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return Page[T]{}, err
	}
	number := ResolvePage(token, NumPagesFor(total, perPage))

	var items []T
	if total > 0 {
		if err := ApplyOrder(tx, order).Offset((number - 1) * perPage).Limit(perPage).Find(&items).Error; err != nil {
			return Page[T]{}, err
		}
	}
	return newPage(items, number, perPage, total), nil
}

// PaginateGroups mem-paginasi tiap key secara independen; token halaman
// tiap key dibaca lewat tokenFor (contoh: query "page_<id>").
func PaginateGroups[K comparable, T any](
	ctx context.Context,
	keys []K,
	scope func(K) *gorm.DB,
	order []SortKey,
	perPage int,
	tokenFor func(K) (param, token string),
) (map[K]Page[T], error) {
	out := make(map[K]Page[T], len(keys))
	for _, k := range keys {
		param, token := tokenFor(k)
		p, err := PaginateQuery[T](ctx, scope(k), order, perPage, token)
		if err != nil {
			return nil, err
		}
		p.Param = param
		out[k] = p
	}
	return out, nil
}

package dpwire

// FilterOptions is the set of optional predicates a `getservers` request can
// attach: a gametype filter, and the empty/full server booleans.
type FilterOptions struct {
	gametype *GameType
	empty    bool
	full     bool
}

// NewFilterOptions builds a FilterOptions value. gametype may be nil to mean "no gametype filter".
func NewFilterOptions(gametype *GameType, empty, full bool) FilterOptions {
	return FilterOptions{gametype: gametype, empty: empty, full: full}
}

// Gametype returns the gametype filter, or nil if none was set.
func (f FilterOptions) Gametype() *GameType { return f.gametype }

// Empty reports whether the "empty" filter option is set.
func (f FilterOptions) Empty() bool { return f.empty }

// Full reports whether the "full" filter option is set.
func (f FilterOptions) Full() bool { return f.full }

// Equal reports whether f and other carry the same filter state.
func (f FilterOptions) Equal(other FilterOptions) bool {
	if f.empty != other.empty || f.full != other.full {
		return false
	}
	switch {
	case f.gametype == nil && other.gametype == nil:
		return true
	case f.gametype == nil || other.gametype == nil:
		return false
	default:
		return f.gametype.Equal(*other.gametype)
	}
}

// FilterExtOptions is FilterOptions plus the getserversExt-only ipv4/ipv6
// address-family filters. Model type only: no wire codec is implemented for
// the ext message family.
type FilterExtOptions struct {
	FilterOptions
	ipv4 bool
	ipv6 bool
}

// NewFilterExtOptions builds a FilterExtOptions value.
func NewFilterExtOptions(gametype *GameType, empty, full, ipv4, ipv6 bool) FilterExtOptions {
	return FilterExtOptions{FilterOptions: NewFilterOptions(gametype, empty, full), ipv4: ipv4, ipv6: ipv6}
}

// IPv4 reports whether the "ipv4" filter option is set.
func (f FilterExtOptions) IPv4() bool { return f.ipv4 }

// IPv6 reports whether the "ipv6" filter option is set.
func (f FilterExtOptions) IPv6() bool { return f.ipv6 }

// Equal reports whether f and other carry the same filter state.
func (f FilterExtOptions) Equal(other FilterExtOptions) bool {
	return f.FilterOptions.Equal(other.FilterOptions) && f.ipv4 == other.ipv4 && f.ipv6 == other.ipv6
}

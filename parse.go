package bitmix

// Parse destructively rewrites buf from JSON text into TLV form and
// returns the root Value, which borrows from buf. buf is mutated in
// place; its length is unchanged. Any subsequent mutation of buf
// invalidates the returned Value and everything reachable from it.
//
// This is the two-phase parser facade: the encode phase runs the value
// dispatcher over the whole buffer, and on success the decode phase reads
// the root record back out of it. The two phases never overlap on the
// same buffer within one call.
func Parse(buf []byte, opts ...ParserOption) (Value, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	end, err := encodeValue(buf, 0)
	if err != nil {
		return Value{}, &ParseError{Err: err}
	}
	if cfg.requireFullConsumption {
		rest := skipWhitespace(buf, end)
		if rest != len(buf) {
			return Value{}, &ParseError{Err: newErr(KindMalformed, rest, "trailing data after JSON value")}
		}
	}

	v, _, err := decodeValue(buf, 0)
	if err != nil {
		return Value{}, &ParseError{Err: err}
	}
	return v, nil
}

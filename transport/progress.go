package transport

import "io"

type progressReader struct {
	r     io.Reader
	sent  int64
	total int64
	fn    func(sent, total int64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		p.fn(p.sent, p.total)
	}
	return n, err
}

// Percent converts a progress callback pair to a whole percentage.
func Percent(sent, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(sent * 100 / total)
}

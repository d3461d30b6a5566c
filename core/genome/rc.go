// core/genome/rc.go
package genome

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	complement['A'] = 'T'; complement['T'] = 'A'
	complement['C'] = 'G'; complement['G'] = 'C'
	complement['a'] = 't'; complement['t'] = 'a'
	complement['c'] = 'g'; complement['g'] = 'c'
}

// RevComp returns the reverse complement of seq. Case is preserved and
// ambiguity codes or other bytes pass through unchanged.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}

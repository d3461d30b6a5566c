// core/genome/rc_test.go
package genome

import (
	"bytes"
	"testing"
)

func TestRevCompSimple(t *testing.T) {
	got := RevComp([]byte("AGTC"))
	want := []byte("GACT")
	if !bytes.Equal(got, want) {
		t.Errorf("RevComp(AGTC) = %s, want %s", got, want)
	}
}

func TestRevCompPreservesCase(t *testing.T) {
	got := RevComp([]byte("acGT"))
	want := []byte("ACgt")
	if !bytes.Equal(got, want) {
		t.Errorf("RevComp(acGT) = %s, want %s", got, want)
	}
}

func TestRevCompAmbiguityCodesPassThrough(t *testing.T) {
	in := []byte("NRYA")
	want := []byte("TYRN")
	got := RevComp(in)
	if !bytes.Equal(got, want) {
		t.Errorf("RevComp(%s) = %s, want %s", in, got, want)
	}
}

func TestRevCompEmpty(t *testing.T) {
	if RevComp(nil) != nil {
		t.Errorf("RevComp(nil) should return nil")
	}
	if out := RevComp([]byte("")); len(out) != 0 {
		t.Errorf("RevComp(\"\") length = %d, want 0", len(out))
	}
}

package keys

import (
	"strings"
	"testing"
)

func TestPoint_Deterministic(t *testing.T) {
	k1 := Point(0xdeadbeef, 7, "872a1072bffffff")
	k2 := Point(0xdeadbeef, 7, "872a1072bffffff")
	if k1 != k2 {
		t.Fatalf("same inputs produced different keys:\n %s\n %s", k1, k2)
	}
}

func TestPoint_FingerprintSeparatesGenerations(t *testing.T) {
	k1 := Point(1, 7, "872a1072bffffff")
	k2 := Point(2, 7, "872a1072bffffff")
	if k1 == k2 {
		t.Fatalf("different fingerprints share a key: %s", k1)
	}
}

func TestPoint_Shape(t *testing.T) {
	k := Point(0xabc, 7, "cell")
	if k != "zonecheck:v=0000000000000abc:r7:cell" {
		t.Fatalf("unexpected key shape: %s", k)
	}
	if !strings.HasPrefix(k, "zonecheck:") {
		t.Fatalf("key missing namespace prefix: %s", k)
	}
}

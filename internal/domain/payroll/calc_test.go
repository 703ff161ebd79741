package payroll

import "testing"

func TestComputeNet(t *testing.T) {
	if net := ComputeNet(50000, 5000, 2000); net != 53000 {
		t.Fatalf("expected net 53000, got %v", net)
	}
}

func TestComputeNetOmittedComponents(t *testing.T) {
	if net := ComputeNet(40000, 0, 0); net != 40000 {
		t.Fatalf("expected net 40000, got %v", net)
	}
	if net := ComputeNet(40000, 0, 1500); net != 38500 {
		t.Fatalf("expected net 38500, got %v", net)
	}
}

package payroll

// ComputeNet derives the amount payable from the salary breakdown.
// Absent components count as zero.
func ComputeNet(basicSalary, allowances, deductions float64) float64 {
	return basicSalary + allowances - deductions
}

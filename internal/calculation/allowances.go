package calculation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nhamdan/ksapay/internal/domain"
)

// CalculateAllowances derives the full monthly allowance breakdown from the
// employee record and the resolved policy. Pure function: no clock, no I/O.
func CalculateAllowances(emp *domain.EmployeeRecord, policy domain.PolicyConfig) domain.AllowanceBreakdown {
	rules := policy.Allowances

	return domain.AllowanceBreakdown{
		Housing:   calculateHousing(emp, rules),
		Transport: domain.TransportAllowance{Amount: rules.Transport, Parking: rules.Parking},
		Education: calculateEducation(emp, rules),
		Family:    calculateFamily(emp, rules),
		Flat:      calculateFlat(emp, rules),
	}
}

// calculateHousing applies the percentage-of-salary formula with the location
// factor and the family-size multiplier, then the absolute cap.
func calculateHousing(emp *domain.EmployeeRecord, rules domain.AllowanceRules) domain.HousingAllowance {
	location := locationFactor(emp.City, rules)
	family := familySizeMultiplier(emp.FamilySize, rules)

	amount := emp.BasicSalary.Mul(rules.HousingPercent).Mul(location).Mul(family)

	capped := false
	if rules.HousingMax.IsPositive() && amount.GreaterThan(rules.HousingMax) {
		amount = rules.HousingMax
		capped = true
	}

	return domain.HousingAllowance{
		Amount:               amount.Round(2),
		Percentage:           rules.HousingPercent,
		LocationFactor:       location,
		FamilySizeMultiplier: family,
		MaxAmount:            rules.HousingMax,
		Capped:               capped,
	}
}

func locationFactor(city string, rules domain.AllowanceRules) decimal.Decimal {
	city = strings.ToLower(strings.TrimSpace(city))
	for _, c := range rules.CapitalCities {
		if city == c {
			return rules.CapitalLocationFactor
		}
	}
	return rules.OtherLocationFactor
}

// familySizeMultiplier is 1 + step per family member beyond the first, capped.
func familySizeMultiplier(familySize int, rules domain.AllowanceRules) decimal.Decimal {
	if familySize < 1 {
		familySize = 1
	}
	extra := decimal.NewFromInt(int64(familySize - 1))
	multiplier := decimal.NewFromInt(1).Add(rules.FamilySizeStep.Mul(extra))
	if multiplier.GreaterThan(rules.FamilySizeCap) {
		return rules.FamilySizeCap
	}
	return multiplier
}

func calculateEducation(emp *domain.EmployeeRecord, rules domain.AllowanceRules) domain.EducationAllowances {
	return domain.EducationAllowances{
		Employee:                rules.EmployeeEducation,
		PerChild:                rules.ChildEducation,
		ChildrenCovered:         coveredChildren(emp.ChildrenCount, rules.MaxAllowanceChildren),
		ProfessionalDevelopment: rules.ProfessionalDevelopment,
		LanguageTraining:        rules.LanguageTraining,
		Certification:           rules.Certification,
	}
}

func calculateFamily(emp *domain.EmployeeRecord, rules domain.AllowanceRules) domain.FamilyAllowances {
	spouse := decimal.Zero
	if emp.MaritalStatus == domain.Married {
		spouse = rules.Spouse
	}

	parents := decimal.Zero
	if emp.DependentParents > 0 {
		parents = rules.DependentParents
	}

	familySize := emp.FamilySize
	if familySize < 1 {
		familySize = 1
	}
	medical := rules.MedicalBase.Add(rules.MedicalPerMember.Mul(decimal.NewFromInt(int64(familySize))))

	return domain.FamilyAllowances{
		Spouse:           spouse,
		PerChild:         rules.ChildFamily,
		ChildrenCovered:  coveredChildren(emp.ChildrenCount, rules.MaxAllowanceChildren),
		DependentParents: parents,
		FamilyMedical:    medical,
	}
}

func calculateFlat(emp *domain.EmployeeRecord, rules domain.AllowanceRules) domain.FlatAllowances {
	representation := decimal.Zero
	if emp.PositionLevel.IsManagerial() {
		representation = rules.Representation
	}

	return domain.FlatAllowances{
		CostOfLiving:   rules.CostOfLiving,
		Medical:        rules.Medical,
		Communication:  rules.Communication,
		Fuel:           rules.Fuel,
		Meal:           rules.Meal,
		Uniform:        rules.Uniform,
		Tools:          rules.Tools,
		Representation: representation,
	}
}

// coveredChildren caps per-child allowances at the policy maximum regardless
// of actual family size.
func coveredChildren(children, max int) int {
	if children < 0 {
		return 0
	}
	if max > 0 && children > max {
		return max
	}
	return children
}

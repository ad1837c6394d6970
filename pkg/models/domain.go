package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Domain identifies the business vertical inferred from a schema.
type Domain string

const (
	DomainHealthcare Domain = "healthcare"
	DomainFinance    Domain = "finance"
	DomainHospital   Domain = "hospital"
	DomainRetail     Domain = "retail"
	DomainEducation  Domain = "education"
	DomainHR         Domain = "hr"
	DomainLogistics  Domain = "logistics"
	DomainEcommerce  Domain = "ecommerce"

	// DomainGeneral is the synthetic fallback when no signature clears the
	// detection threshold.
	DomainGeneral Domain = "general"

	// DomainUnknown is only ever reported for requests that failed before
	// detection completed.
	DomainUnknown Domain = "unknown"
)

// DomainSignature describes one supported domain: the keywords matched
// against schema text and the descriptive sentence compared by embedding.
type DomainSignature struct {
	Name        Domain   `yaml:"name"`
	Keywords    []string `yaml:"keywords"`
	Description string   `yaml:"description"`
}

// DefaultDomainSignatures returns the built-in signature table.
// Slice order is the declared order and doubles as the argmax tie-break:
// when two domains score equally, the earlier entry wins.
func DefaultDomainSignatures() []DomainSignature {
	return []DomainSignature{
		{
			Name: DomainHealthcare,
			Keywords: []string{
				"patient", "diagnosis", "treatment", "medication", "prescription",
				"doctor", "physician", "medical", "clinic", "symptom", "disease",
				"icd", "cpt", "vital_signs", "blood_pressure", "heart_rate",
			},
			Description: "medical healthcare patient diagnosis treatment doctor hospital pharmacy medicine clinical",
		},
		{
			Name: DomainFinance,
			Keywords: []string{
				"transaction", "account", "balance", "revenue", "profit", "loss",
				"invoice", "payment", "credit", "debit", "ledger", "expense",
				"income", "budget", "investment", "loan", "interest",
			},
			Description: "financial money transaction account balance payment invoice revenue profit banking investment",
		},
		{
			Name: DomainHospital,
			Keywords: []string{
				"admission", "discharge", "ward", "bed", "nurse", "emergency",
				"surgery", "radiology", "lab_test", "icu", "operation",
				"inpatient", "outpatient", "appointment", "room",
			},
			Description: "hospital admission patient ward bed nurse emergency surgery medical records department",
		},
		{
			Name: DomainRetail,
			Keywords: []string{
				"product", "sales", "customer", "order", "inventory", "purchase",
				"sku", "price", "quantity", "store", "cart", "checkout",
				"shipping", "delivery", "supplier", "stock",
			},
			Description: "retail sales product customer order inventory purchase shopping ecommerce store",
		},
		{
			Name: DomainEducation,
			Keywords: []string{
				"student", "teacher", "course", "grade", "exam", "assignment",
				"enrollment", "class", "subject", "semester", "department",
				"faculty", "attendance", "marks", "gpa",
			},
			Description: "education student teacher course grade exam school university college learning",
		},
		{
			Name: DomainHR,
			Keywords: []string{
				"employee", "salary", "department", "payroll", "leave", "attendance",
				"recruitment", "performance", "appraisal", "manager", "hire",
				"resignation", "promotion", "bonus", "benefits",
			},
			Description: "human resources employee salary department payroll recruitment performance management",
		},
		{
			Name: DomainLogistics,
			Keywords: []string{
				"shipment", "delivery", "warehouse", "transport", "tracking",
				"carrier", "freight", "route", "vehicle", "driver", "cargo",
				"dispatch", "loading", "unloading", "inventory",
			},
			Description: "logistics shipping delivery warehouse transport tracking freight supply chain",
		},
		{
			Name: DomainEcommerce,
			Keywords: []string{
				"cart", "checkout", "payment", "order", "customer", "product",
				"review", "rating", "wishlist", "discount", "coupon", "refund",
				"shipping", "returns", "browse",
			},
			Description: "ecommerce online shopping cart checkout payment order customer product website",
		},
	}
}

// LoadDomainSignatures reads a signature table from a YAML file.
// Used by operators who want to extend or replace the built-in domains.
func LoadDomainSignatures(path string) ([]DomainSignature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read domain signatures: %w", err)
	}

	var sigs []DomainSignature
	if err := yaml.Unmarshal(data, &sigs); err != nil {
		return nil, fmt.Errorf("parse domain signatures: %w", err)
	}

	for i, sig := range sigs {
		if sig.Name == "" {
			return nil, fmt.Errorf("domain signature %d has no name", i)
		}
		if sig.Description == "" {
			return nil, fmt.Errorf("domain signature %q has no description", sig.Name)
		}
	}

	return sigs, nil
}

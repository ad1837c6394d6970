// Package prompts builds the provider prompts for SQL synthesis and
// response generation.
package prompts

import (
	"fmt"
	"strings"

	"github.com/askdb-ai/askdb-engine/pkg/models"
)

// DomainSQLTips maps each domain to guidance lines injected into the SQL
// generation prompt. Domains without an entry get a generic line.
var DomainSQLTips = map[models.Domain][]string{
	models.DomainHealthcare: {
		"Use patient_id for joins with patient tables",
		"Consider HIPAA compliance - don't expose sensitive fields without permission",
		"Common metrics: patient count, diagnosis frequency, treatment outcomes",
		"Date fields often: admission_date, discharge_date, appointment_date",
	},
	models.DomainFinance: {
		"Always use DECIMAL for monetary values, not FLOAT",
		"Common aggregations: SUM(amount), AVG(balance), COUNT(transactions)",
		"Consider currency conversions if multi-currency",
		"Date fields often: transaction_date, payment_date, due_date",
	},
	models.DomainHospital: {
		"Use bed_id, ward_id for hospital operations",
		"Track admission/discharge dates carefully",
		"Common metrics: bed occupancy, average stay duration, department load",
		"Emergency cases may need priority flagging",
	},
	models.DomainRetail: {
		"Use product_id, customer_id, order_id for relationships",
		"Inventory tracking: stock levels, reorder points",
		"Common metrics: total sales, items sold, average order value",
		"Consider seasonal trends in date filters",
	},
	models.DomainEducation: {
		"Use student_id, course_id, teacher_id for relationships",
		"GPA calculations may need weighted averages",
		"Common metrics: enrollment count, average grades, attendance rate",
		"Academic calendars: semesters, terms, academic years",
	},
	models.DomainHR: {
		"Use employee_id, department_id for relationships",
		"Salary data is sensitive - ensure access control",
		"Common metrics: headcount, average salary, turnover rate",
		"Date fields: hire_date, termination_date, appraisal_date",
	},
	models.DomainLogistics: {
		"Track shipment_id, delivery_id, warehouse_id",
		"Location data: origin, destination, current_location",
		"Common metrics: delivery time, routes efficiency, capacity utilization",
		"Status tracking: pending, in_transit, delivered",
	},
	models.DomainEcommerce: {
		"Use order_id, product_id, customer_id, cart_id",
		"Track order status: pending, confirmed, shipped, delivered, cancelled",
		"Common metrics: conversion rate, cart abandonment, average order value",
		"Consider user sessions and browsing behavior",
	},
}

// SQLSystemMessage returns the system message for SQL generation.
func SQLSystemMessage(domain models.Domain) string {
	return fmt.Sprintf("You are a SQL expert specializing in %s databases. Generate ONLY valid SQL queries without explanations.", domain)
}

// BuildSQLPrompt assembles the domain-aware SQL generation prompt.
func BuildSQLPrompt(userPrompt string, cls *models.Classification, schema models.Schema) string {
	var b strings.Builder

	b.WriteString("Generate a SQL query for this request:\n\n")
	b.WriteString("USER REQUEST: " + userPrompt + "\n\n")
	b.WriteString(FormatClassificationContext(cls))
	b.WriteString("\nDATABASE SCHEMA:\n")
	b.WriteString(FormatSchema(schema))
	b.WriteString(fmt.Sprintf("\nDOMAIN-SPECIFIC GUIDELINES (%s):\n", cls.Domain))
	b.WriteString(formatDomainTips(DomainSQLTips[cls.Domain]))
	b.WriteString("\n\nINSTRUCTIONS:\n")
	b.WriteString("1. Generate ONLY the SQL query (no explanations)\n")
	b.WriteString("2. No markdown formatting or code blocks\n")
	b.WriteString("3. Use proper JOINs if multiple tables needed\n")
	b.WriteString("4. Add WHERE clause for time filters if specified\n")
	b.WriteString("5. Use GROUP BY for aggregations\n")
	b.WriteString("6. Add ORDER BY and LIMIT if specified\n")
	b.WriteString(fmt.Sprintf("7. Follow %s domain best practices\n", cls.Domain))
	b.WriteString("8. Ensure query is compatible with PostgreSQL/MySQL/SQLite\n")
	b.WriteString("9. Use appropriate field names based on domain context\n\n")
	b.WriteString("SQL QUERY:")

	return b.String()
}

// FormatClassificationContext serializes the classification outputs as the
// human-readable key:value block embedded into provider prompts: domain
// uppercased, absent time period rendered "all", absent aggregation and
// limit rendered "none".
func FormatClassificationContext(cls *models.Classification) string {
	entities := cls.Entities
	if entities == nil {
		entities = &models.Entities{}
	}

	timePeriod := "all"
	if entities.TimePeriod != "" {
		timePeriod = string(entities.TimePeriod)
	}

	aggregation := "none"
	if entities.Aggregation != "" {
		aggregation = string(entities.Aggregation)
	}

	limit := "none"
	if entities.Limit != nil {
		limit = fmt.Sprintf("%d", *entities.Limit)
	}

	intent := ""
	if cls.Intent != nil {
		intent = string(cls.Intent.Intent)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "DETECTED DOMAIN: %s\n", strings.ToUpper(string(cls.Domain)))
	fmt.Fprintf(&b, "INTENT: %s\n", intent)
	fmt.Fprintf(&b, "METRICS: %s\n", formatList(entities.Metrics))
	fmt.Fprintf(&b, "DIMENSIONS: %s\n", formatList(entities.Dimensions))
	fmt.Fprintf(&b, "TIME PERIOD: %s\n", timePeriod)
	fmt.Fprintf(&b, "AGGREGATION: %s\n", aggregation)
	fmt.Fprintf(&b, "LIMIT: %s\n", limit)
	return b.String()
}

// FormatSchema renders the schema listing for the prompt.
func FormatSchema(schema models.Schema) string {
	var b strings.Builder
	for _, table := range schema {
		fmt.Fprintf(&b, "\nTable: %s\n", table.Name)
		fmt.Fprintf(&b, "Columns: %s\n", strings.Join(table.Columns, ", "))
	}
	return b.String()
}

func formatDomainTips(tips []string) string {
	if len(tips) == 0 {
		return "- Use standard SQL best practices"
	}
	lines := make([]string, len(tips))
	for i, tip := range tips {
		lines[i] = "- " + tip
	}
	return strings.Join(lines, "\n")
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	return "[" + strings.Join(items, ", ") + "]"
}

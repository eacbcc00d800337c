// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[5]},
			},
			{
				Name:    "document_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6]},
			},
		},
	}
	// ParseJobsColumns holds the columns for the "parse_jobs" table.
	ParseJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "decode_method", Type: field.TypeString, Nullable: true},
		{Name: "pages", Type: field.TypeInt, Nullable: true},
		{Name: "ocr_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ParseJobsTable holds the schema information for the "parse_jobs" table.
	ParseJobsTable = &schema.Table{
		Name:       "parse_jobs",
		Columns:    ParseJobsColumns,
		PrimaryKey: []*schema.Column{ParseJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "parse_jobs_documents_jobs",
				Columns:    []*schema.Column{ParseJobsColumns[9]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "parsejob_document_id",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[9]},
			},
			{
				Name:    "parsejob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[2], ParseJobsColumns[6]},
			},
		},
	}
	// ParseResultsColumns holds the columns for the "parse_results" table.
	ParseResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "issuer", Type: field.TypeString},
		{Name: "issuer_confidence", Type: field.TypeFloat64},
		{Name: "overall_confidence", Type: field.TypeFloat64},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "transactions", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID, Unique: true},
	}
	// ParseResultsTable holds the schema information for the "parse_results" table.
	ParseResultsTable = &schema.Table{
		Name:       "parse_results",
		Columns:    ParseResultsColumns,
		PrimaryKey: []*schema.Column{ParseResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "parse_results_parse_jobs_result",
				Columns:    []*schema.Column{ParseResultsColumns[7]},
				RefColumns: []*schema.Column{ParseJobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "parseresult_job_id",
				Unique:  true,
				Columns: []*schema.Column{ParseResultsColumns[7]},
			},
			{
				Name:    "parseresult_issuer_created_at",
				Unique:  false,
				Columns: []*schema.Column{ParseResultsColumns[1], ParseResultsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		ParseJobsTable,
		ParseResultsTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ParseJobsTable.ForeignKeys[0].RefTable = DocumentsTable
	ParseJobsTable.Annotation = &entsql.Annotation{
		Table: "parse_jobs",
	}
	ParseResultsTable.ForeignKeys[0].RefTable = ParseJobsTable
	ParseResultsTable.Annotation = &entsql.Annotation{
		Table: "parse_results",
	}
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConnectionsColumns holds the columns for the "connections" table.
	ConnectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_id", Type: field.TypeString},
		{Name: "target_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "connection_owner", Type: field.TypeUUID},
		{Name: "connection_project", Type: field.TypeUUID},
	}
	// ConnectionsTable holds the schema information for the "connections" table.
	ConnectionsTable = &schema.Table{
		Name:       "connections",
		Columns:    ConnectionsColumns,
		PrimaryKey: []*schema.Column{ConnectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "connections_users_owner",
				Columns:    []*schema.Column{ConnectionsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "connections_projects_project",
				Columns:    []*schema.Column{ConnectionsColumns[5]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "connection_connection_owner_connection_project",
				Unique:  false,
				Columns: []*schema.Column{ConnectionsColumns[4], ConnectionsColumns[5]},
			},
		},
	}
	// FramesColumns holds the columns for the "frames" table.
	FramesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "x", Type: field.TypeFloat64, Default: 0},
		{Name: "y", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "frame_owner", Type: field.TypeUUID},
		{Name: "frame_project", Type: field.TypeUUID},
	}
	// FramesTable holds the schema information for the "frames" table.
	FramesTable = &schema.Table{
		Name:       "frames",
		Columns:    FramesColumns,
		PrimaryKey: []*schema.Column{FramesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "frames_users_owner",
				Columns:    []*schema.Column{FramesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "frames_projects_project",
				Columns:    []*schema.Column{FramesColumns[7]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "frame_frame_owner_frame_project",
				Unique:  false,
				Columns: []*schema.Column{FramesColumns[6], FramesColumns[7]},
			},
		},
	}
	// IdeasColumns holds the columns for the "ideas" table.
	IdeasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "x", Type: field.TypeFloat64, Default: 0},
		{Name: "y", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "idea_owner", Type: field.TypeUUID},
		{Name: "idea_project", Type: field.TypeUUID},
	}
	// IdeasTable holds the schema information for the "ideas" table.
	IdeasTable = &schema.Table{
		Name:       "ideas",
		Columns:    IdeasColumns,
		PrimaryKey: []*schema.Column{IdeasColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ideas_users_owner",
				Columns:    []*schema.Column{IdeasColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "ideas_projects_project",
				Columns:    []*schema.Column{IdeasColumns[7]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idea_idea_owner_idea_project",
				Unique:  false,
				Columns: []*schema.Column{IdeasColumns[6], IdeasColumns[7]},
			},
		},
	}
	// IdentitiesColumns holds the columns for the "identities" table.
	IdentitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"password"}},
		{Name: "identifier", Type: field.TypeString, Unique: true},
		{Name: "secret_hash", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_identities", Type: field.TypeUUID},
	}
	// IdentitiesTable holds the schema information for the "identities" table.
	IdentitiesTable = &schema.Table{
		Name:       "identities",
		Columns:    IdentitiesColumns,
		PrimaryKey: []*schema.Column{IdentitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "identities_users_identities",
				Columns:    []*schema.Column{IdentitiesColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// PredefinedProblemsColumns holds the columns for the "predefined_problems" table.
	PredefinedProblemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "sdg_goal", Type: field.TypeString},
		{Name: "problem_statement", Type: field.TypeString, Size: 2147483647},
		{Name: "stakeholders", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PredefinedProblemsTable holds the schema information for the "predefined_problems" table.
	PredefinedProblemsTable = &schema.Table{
		Name:       "predefined_problems",
		Columns:    PredefinedProblemsColumns,
		PrimaryKey: []*schema.Column{PredefinedProblemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "predefinedproblem_sdg_goal",
				Unique:  false,
				Columns: []*schema.Column{PredefinedProblemsColumns[1]},
			},
		},
	}
	// ProblemStatementsColumns holds the columns for the "problem_statements" table.
	ProblemStatementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "problem_statement_owner", Type: field.TypeUUID},
		{Name: "problem_statement_project", Type: field.TypeUUID},
	}
	// ProblemStatementsTable holds the schema information for the "problem_statements" table.
	ProblemStatementsTable = &schema.Table{
		Name:       "problem_statements",
		Columns:    ProblemStatementsColumns,
		PrimaryKey: []*schema.Column{ProblemStatementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "problem_statements_users_owner",
				Columns:    []*schema.Column{ProblemStatementsColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "problem_statements_projects_project",
				Columns:    []*schema.Column{ProblemStatementsColumns[4]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "problemstatement_problem_statement_owner_problem_statement_project",
				Unique:  false,
				Columns: []*schema.Column{ProblemStatementsColumns[3], ProblemStatementsColumns[4]},
			},
		},
	}
	// ProgramsColumns holds the columns for the "programs" table.
	ProgramsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgramsTable holds the schema information for the "programs" table.
	ProgramsTable = &schema.Table{
		Name:       "programs",
		Columns:    ProgramsColumns,
		PrimaryKey: []*schema.Column{ProgramsColumns[0]},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Default: "New Project"},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Default: ""},
		{Name: "team_info", Type: field.TypeJSON, Nullable: true},
		{Name: "problem_info", Type: field.TypeJSON, Nullable: true},
		{Name: "ideation_session_id", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_owner", Type: field.TypeUUID},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "projects_users_owner",
				Columns:    []*schema.Column{ProjectsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "project_project_owner",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[10]},
			},
			{
				Name:    "project_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[9]},
			},
		},
	}
	// PrototypesColumns holds the columns for the "prototypes" table.
	PrototypesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "files", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_prototype", Type: field.TypeUUID, Unique: true, Nullable: true},
	}
	// PrototypesTable holds the schema information for the "prototypes" table.
	PrototypesTable = &schema.Table{
		Name:       "prototypes",
		Columns:    PrototypesColumns,
		PrimaryKey: []*schema.Column{PrototypesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prototypes_projects_prototype",
				Columns:    []*schema.Column{PrototypesColumns[5]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// SchoolsColumns holds the columns for the "schools" table.
	SchoolsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SchoolsTable holds the schema information for the "schools" table.
	SchoolsTable = &schema.Table{
		Name:       "schools",
		Columns:    SchoolsColumns,
		PrimaryKey: []*schema.Column{SchoolsColumns[0]},
	}
	// SchoolProgramsColumns holds the columns for the "school_programs" table.
	SchoolProgramsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "number_of_students", Type: field.TypeInt, Default: 0},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "school_program_school", Type: field.TypeUUID},
		{Name: "school_program_program", Type: field.TypeUUID},
	}
	// SchoolProgramsTable holds the schema information for the "school_programs" table.
	SchoolProgramsTable = &schema.Table{
		Name:       "school_programs",
		Columns:    SchoolProgramsColumns,
		PrimaryKey: []*schema.Column{SchoolProgramsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "school_programs_schools_school",
				Columns:    []*schema.Column{SchoolProgramsColumns[5]},
				RefColumns: []*schema.Column{SchoolsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "school_programs_programs_program",
				Columns:    []*schema.Column{SchoolProgramsColumns[6]},
				RefColumns: []*schema.Column{ProgramsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "schoolprogram_school_program_school_school_program_program",
				Unique:  true,
				Columns: []*schema.Column{SchoolProgramsColumns[5], SchoolProgramsColumns[6]},
			},
		},
	}
	// SolutionsColumns holds the columns for the "solutions" table.
	SolutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "key_features", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "implementation_steps", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_solution", Type: field.TypeUUID, Unique: true, Nullable: true},
		{Name: "solution_owner", Type: field.TypeUUID},
	}
	// SolutionsTable holds the schema information for the "solutions" table.
	SolutionsTable = &schema.Table{
		Name:       "solutions",
		Columns:    SolutionsColumns,
		PrimaryKey: []*schema.Column{SolutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "solutions_projects_solution",
				Columns:    []*schema.Column{SolutionsColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "solutions_users_owner",
				Columns:    []*schema.Column{SolutionsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"student", "admin", "program_admin"}, Default: "student"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConnectionsTable,
		FramesTable,
		IdeasTable,
		IdentitiesTable,
		PredefinedProblemsTable,
		ProblemStatementsTable,
		ProgramsTable,
		ProjectsTable,
		PrototypesTable,
		SchoolsTable,
		SchoolProgramsTable,
		SolutionsTable,
		UsersTable,
	}
)

func init() {
	ConnectionsTable.ForeignKeys[0].RefTable = UsersTable
	ConnectionsTable.ForeignKeys[1].RefTable = ProjectsTable
	FramesTable.ForeignKeys[0].RefTable = UsersTable
	FramesTable.ForeignKeys[1].RefTable = ProjectsTable
	IdeasTable.ForeignKeys[0].RefTable = UsersTable
	IdeasTable.ForeignKeys[1].RefTable = ProjectsTable
	IdentitiesTable.ForeignKeys[0].RefTable = UsersTable
	ProblemStatementsTable.ForeignKeys[0].RefTable = UsersTable
	ProblemStatementsTable.ForeignKeys[1].RefTable = ProjectsTable
	ProjectsTable.ForeignKeys[0].RefTable = UsersTable
	PrototypesTable.ForeignKeys[0].RefTable = ProjectsTable
	SchoolProgramsTable.ForeignKeys[0].RefTable = SchoolsTable
	SchoolProgramsTable.ForeignKeys[1].RefTable = ProgramsTable
	SolutionsTable.ForeignKeys[0].RefTable = ProjectsTable
	SolutionsTable.ForeignKeys[1].RefTable = UsersTable
}

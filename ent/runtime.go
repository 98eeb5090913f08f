// Code generated by ent, DO NOT EDIT.

package ent

import (
	"sdg-innovation-api/ent/connection"
	"sdg-innovation-api/ent/frame"
	"sdg-innovation-api/ent/idea"
	"sdg-innovation-api/ent/identity"
	"sdg-innovation-api/ent/predefinedproblem"
	"sdg-innovation-api/ent/problemstatement"
	"sdg-innovation-api/ent/program"
	"sdg-innovation-api/ent/project"
	"sdg-innovation-api/ent/prototype"
	"sdg-innovation-api/ent/schema"
	"sdg-innovation-api/ent/school"
	"sdg-innovation-api/ent/schoolprogram"
	"sdg-innovation-api/ent/solution"
	"sdg-innovation-api/ent/user"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	connectionFields := schema.Connection{}.Fields()
	_ = connectionFields
	// connectionDescSourceID is the schema descriptor for source_id field.
	connectionDescSourceID := connectionFields[1].Descriptor()
	// connection.SourceIDValidator is a validator for the "source_id" field. It is called by the builders before save.
	connection.SourceIDValidator = connectionDescSourceID.Validators[0].(func(string) error)
	// connectionDescTargetID is the schema descriptor for target_id field.
	connectionDescTargetID := connectionFields[2].Descriptor()
	// connection.TargetIDValidator is a validator for the "target_id" field. It is called by the builders before save.
	connection.TargetIDValidator = connectionDescTargetID.Validators[0].(func(string) error)
	// connectionDescCreatedAt is the schema descriptor for created_at field.
	connectionDescCreatedAt := connectionFields[3].Descriptor()
	// connection.DefaultCreatedAt holds the default value on creation for the created_at field.
	connection.DefaultCreatedAt = connectionDescCreatedAt.Default.(func() time.Time)
	// connectionDescID is the schema descriptor for id field.
	connectionDescID := connectionFields[0].Descriptor()
	// connection.DefaultID holds the default value on creation for the id field.
	connection.DefaultID = connectionDescID.Default.(func() uuid.UUID)
	frameFields := schema.Frame{}.Fields()
	_ = frameFields
	// frameDescContent is the schema descriptor for content field.
	frameDescContent := frameFields[1].Descriptor()
	// frame.DefaultContent holds the default value on creation for the content field.
	frame.DefaultContent = frameDescContent.Default.(string)
	// frameDescX is the schema descriptor for x field.
	frameDescX := frameFields[2].Descriptor()
	// frame.DefaultX holds the default value on creation for the x field.
	frame.DefaultX = frameDescX.Default.(float64)
	// frameDescY is the schema descriptor for y field.
	frameDescY := frameFields[3].Descriptor()
	// frame.DefaultY holds the default value on creation for the y field.
	frame.DefaultY = frameDescY.Default.(float64)
	// frameDescCreatedAt is the schema descriptor for created_at field.
	frameDescCreatedAt := frameFields[4].Descriptor()
	// frame.DefaultCreatedAt holds the default value on creation for the created_at field.
	frame.DefaultCreatedAt = frameDescCreatedAt.Default.(func() time.Time)
	// frameDescUpdatedAt is the schema descriptor for updated_at field.
	frameDescUpdatedAt := frameFields[5].Descriptor()
	// frame.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	frame.DefaultUpdatedAt = frameDescUpdatedAt.Default.(func() time.Time)
	// frame.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	frame.UpdateDefaultUpdatedAt = frameDescUpdatedAt.UpdateDefault.(func() time.Time)
	// frameDescID is the schema descriptor for id field.
	frameDescID := frameFields[0].Descriptor()
	// frame.DefaultID holds the default value on creation for the id field.
	frame.DefaultID = frameDescID.Default.(func() uuid.UUID)
	ideaFields := schema.Idea{}.Fields()
	_ = ideaFields
	// ideaDescContent is the schema descriptor for content field.
	ideaDescContent := ideaFields[1].Descriptor()
	// idea.DefaultContent holds the default value on creation for the content field.
	idea.DefaultContent = ideaDescContent.Default.(string)
	// ideaDescX is the schema descriptor for x field.
	ideaDescX := ideaFields[2].Descriptor()
	// idea.DefaultX holds the default value on creation for the x field.
	idea.DefaultX = ideaDescX.Default.(float64)
	// ideaDescY is the schema descriptor for y field.
	ideaDescY := ideaFields[3].Descriptor()
	// idea.DefaultY holds the default value on creation for the y field.
	idea.DefaultY = ideaDescY.Default.(float64)
	// ideaDescCreatedAt is the schema descriptor for created_at field.
	ideaDescCreatedAt := ideaFields[4].Descriptor()
	// idea.DefaultCreatedAt holds the default value on creation for the created_at field.
	idea.DefaultCreatedAt = ideaDescCreatedAt.Default.(func() time.Time)
	// ideaDescUpdatedAt is the schema descriptor for updated_at field.
	ideaDescUpdatedAt := ideaFields[5].Descriptor()
	// idea.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	idea.DefaultUpdatedAt = ideaDescUpdatedAt.Default.(func() time.Time)
	// idea.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	idea.UpdateDefaultUpdatedAt = ideaDescUpdatedAt.UpdateDefault.(func() time.Time)
	// ideaDescID is the schema descriptor for id field.
	ideaDescID := ideaFields[0].Descriptor()
	// idea.DefaultID holds the default value on creation for the id field.
	idea.DefaultID = ideaDescID.Default.(func() uuid.UUID)
	identityFields := schema.Identity{}.Fields()
	_ = identityFields
	// identityDescIdentifier is the schema descriptor for identifier field.
	identityDescIdentifier := identityFields[2].Descriptor()
	// identity.IdentifierValidator is a validator for the "identifier" field. It is called by the builders before save.
	identity.IdentifierValidator = identityDescIdentifier.Validators[0].(func(string) error)
	// identityDescCreatedAt is the schema descriptor for created_at field.
	identityDescCreatedAt := identityFields[4].Descriptor()
	// identity.DefaultCreatedAt holds the default value on creation for the created_at field.
	identity.DefaultCreatedAt = identityDescCreatedAt.Default.(func() time.Time)
	// identityDescID is the schema descriptor for id field.
	identityDescID := identityFields[0].Descriptor()
	// identity.DefaultID holds the default value on creation for the id field.
	identity.DefaultID = identityDescID.Default.(func() uuid.UUID)
	predefinedproblemFields := schema.PredefinedProblem{}.Fields()
	_ = predefinedproblemFields
	// predefinedproblemDescSdgGoal is the schema descriptor for sdg_goal field.
	predefinedproblemDescSdgGoal := predefinedproblemFields[1].Descriptor()
	// predefinedproblem.SdgGoalValidator is a validator for the "sdg_goal" field. It is called by the builders before save.
	predefinedproblem.SdgGoalValidator = predefinedproblemDescSdgGoal.Validators[0].(func(string) error)
	// predefinedproblemDescProblemStatement is the schema descriptor for problem_statement field.
	predefinedproblemDescProblemStatement := predefinedproblemFields[2].Descriptor()
	// predefinedproblem.ProblemStatementValidator is a validator for the "problem_statement" field. It is called by the builders before save.
	predefinedproblem.ProblemStatementValidator = predefinedproblemDescProblemStatement.Validators[0].(func(string) error)
	// predefinedproblemDescCreatedAt is the schema descriptor for created_at field.
	predefinedproblemDescCreatedAt := predefinedproblemFields[4].Descriptor()
	// predefinedproblem.DefaultCreatedAt holds the default value on creation for the created_at field.
	predefinedproblem.DefaultCreatedAt = predefinedproblemDescCreatedAt.Default.(func() time.Time)
	// predefinedproblemDescID is the schema descriptor for id field.
	predefinedproblemDescID := predefinedproblemFields[0].Descriptor()
	// predefinedproblem.DefaultID holds the default value on creation for the id field.
	predefinedproblem.DefaultID = predefinedproblemDescID.Default.(func() uuid.UUID)
	problemstatementFields := schema.ProblemStatement{}.Fields()
	_ = problemstatementFields
	// problemstatementDescContent is the schema descriptor for content field.
	problemstatementDescContent := problemstatementFields[1].Descriptor()
	// problemstatement.DefaultContent holds the default value on creation for the content field.
	problemstatement.DefaultContent = problemstatementDescContent.Default.(string)
	// problemstatementDescCreatedAt is the schema descriptor for created_at field.
	problemstatementDescCreatedAt := problemstatementFields[2].Descriptor()
	// problemstatement.DefaultCreatedAt holds the default value on creation for the created_at field.
	problemstatement.DefaultCreatedAt = problemstatementDescCreatedAt.Default.(func() time.Time)
	// problemstatementDescID is the schema descriptor for id field.
	problemstatementDescID := problemstatementFields[0].Descriptor()
	// problemstatement.DefaultID holds the default value on creation for the id field.
	problemstatement.DefaultID = problemstatementDescID.Default.(func() uuid.UUID)
	programFields := schema.Program{}.Fields()
	_ = programFields
	// programDescName is the schema descriptor for name field.
	programDescName := programFields[1].Descriptor()
	// program.NameValidator is a validator for the "name" field. It is called by the builders before save.
	program.NameValidator = programDescName.Validators[0].(func(string) error)
	// programDescIsActive is the schema descriptor for is_active field.
	programDescIsActive := programFields[3].Descriptor()
	// program.DefaultIsActive holds the default value on creation for the is_active field.
	program.DefaultIsActive = programDescIsActive.Default.(bool)
	// programDescCreatedAt is the schema descriptor for created_at field.
	programDescCreatedAt := programFields[4].Descriptor()
	// program.DefaultCreatedAt holds the default value on creation for the created_at field.
	program.DefaultCreatedAt = programDescCreatedAt.Default.(func() time.Time)
	// programDescUpdatedAt is the schema descriptor for updated_at field.
	programDescUpdatedAt := programFields[5].Descriptor()
	// program.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	program.DefaultUpdatedAt = programDescUpdatedAt.Default.(func() time.Time)
	// program.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	program.UpdateDefaultUpdatedAt = programDescUpdatedAt.UpdateDefault.(func() time.Time)
	// programDescID is the schema descriptor for id field.
	programDescID := programFields[0].Descriptor()
	// program.DefaultID holds the default value on creation for the id field.
	program.DefaultID = programDescID.Default.(func() uuid.UUID)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescTitle is the schema descriptor for title field.
	projectDescTitle := projectFields[1].Descriptor()
	// project.DefaultTitle holds the default value on creation for the title field.
	project.DefaultTitle = projectDescTitle.Default.(string)
	// projectDescDescription is the schema descriptor for description field.
	projectDescDescription := projectFields[2].Descriptor()
	// project.DefaultDescription holds the default value on creation for the description field.
	project.DefaultDescription = projectDescDescription.Default.(string)
	// projectDescNotes is the schema descriptor for notes field.
	projectDescNotes := projectFields[4].Descriptor()
	// project.DefaultNotes holds the default value on creation for the notes field.
	project.DefaultNotes = projectDescNotes.Default.(string)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[8].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[9].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescID is the schema descriptor for id field.
	projectDescID := projectFields[0].Descriptor()
	// project.DefaultID holds the default value on creation for the id field.
	project.DefaultID = projectDescID.Default.(func() uuid.UUID)
	prototypeFields := schema.Prototype{}.Fields()
	_ = prototypeFields
	// prototypeDescDescription is the schema descriptor for description field.
	prototypeDescDescription := prototypeFields[1].Descriptor()
	// prototype.DefaultDescription holds the default value on creation for the description field.
	prototype.DefaultDescription = prototypeDescDescription.Default.(string)
	// prototypeDescCreatedAt is the schema descriptor for created_at field.
	prototypeDescCreatedAt := prototypeFields[3].Descriptor()
	// prototype.DefaultCreatedAt holds the default value on creation for the created_at field.
	prototype.DefaultCreatedAt = prototypeDescCreatedAt.Default.(func() time.Time)
	// prototypeDescUpdatedAt is the schema descriptor for updated_at field.
	prototypeDescUpdatedAt := prototypeFields[4].Descriptor()
	// prototype.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prototype.DefaultUpdatedAt = prototypeDescUpdatedAt.Default.(func() time.Time)
	// prototype.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prototype.UpdateDefaultUpdatedAt = prototypeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// prototypeDescID is the schema descriptor for id field.
	prototypeDescID := prototypeFields[0].Descriptor()
	// prototype.DefaultID holds the default value on creation for the id field.
	prototype.DefaultID = prototypeDescID.Default.(func() uuid.UUID)
	schoolFields := schema.School{}.Fields()
	_ = schoolFields
	// schoolDescName is the schema descriptor for name field.
	schoolDescName := schoolFields[1].Descriptor()
	// school.NameValidator is a validator for the "name" field. It is called by the builders before save.
	school.NameValidator = schoolDescName.Validators[0].(func(string) error)
	// schoolDescIsActive is the schema descriptor for is_active field.
	schoolDescIsActive := schoolFields[5].Descriptor()
	// school.DefaultIsActive holds the default value on creation for the is_active field.
	school.DefaultIsActive = schoolDescIsActive.Default.(bool)
	// schoolDescCreatedAt is the schema descriptor for created_at field.
	schoolDescCreatedAt := schoolFields[6].Descriptor()
	// school.DefaultCreatedAt holds the default value on creation for the created_at field.
	school.DefaultCreatedAt = schoolDescCreatedAt.Default.(func() time.Time)
	// schoolDescUpdatedAt is the schema descriptor for updated_at field.
	schoolDescUpdatedAt := schoolFields[7].Descriptor()
	// school.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	school.DefaultUpdatedAt = schoolDescUpdatedAt.Default.(func() time.Time)
	// school.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	school.UpdateDefaultUpdatedAt = schoolDescUpdatedAt.UpdateDefault.(func() time.Time)
	// schoolDescID is the schema descriptor for id field.
	schoolDescID := schoolFields[0].Descriptor()
	// school.DefaultID holds the default value on creation for the id field.
	school.DefaultID = schoolDescID.Default.(func() uuid.UUID)
	schoolprogramFields := schema.SchoolProgram{}.Fields()
	_ = schoolprogramFields
	// schoolprogramDescNumberOfStudents is the schema descriptor for number_of_students field.
	schoolprogramDescNumberOfStudents := schoolprogramFields[1].Descriptor()
	// schoolprogram.DefaultNumberOfStudents holds the default value on creation for the number_of_students field.
	schoolprogram.DefaultNumberOfStudents = schoolprogramDescNumberOfStudents.Default.(int)
	// schoolprogramDescIsActive is the schema descriptor for is_active field.
	schoolprogramDescIsActive := schoolprogramFields[2].Descriptor()
	// schoolprogram.DefaultIsActive holds the default value on creation for the is_active field.
	schoolprogram.DefaultIsActive = schoolprogramDescIsActive.Default.(bool)
	// schoolprogramDescCreatedAt is the schema descriptor for created_at field.
	schoolprogramDescCreatedAt := schoolprogramFields[3].Descriptor()
	// schoolprogram.DefaultCreatedAt holds the default value on creation for the created_at field.
	schoolprogram.DefaultCreatedAt = schoolprogramDescCreatedAt.Default.(func() time.Time)
	// schoolprogramDescUpdatedAt is the schema descriptor for updated_at field.
	schoolprogramDescUpdatedAt := schoolprogramFields[4].Descriptor()
	// schoolprogram.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	schoolprogram.DefaultUpdatedAt = schoolprogramDescUpdatedAt.Default.(func() time.Time)
	// schoolprogram.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	schoolprogram.UpdateDefaultUpdatedAt = schoolprogramDescUpdatedAt.UpdateDefault.(func() time.Time)
	// schoolprogramDescID is the schema descriptor for id field.
	schoolprogramDescID := schoolprogramFields[0].Descriptor()
	// schoolprogram.DefaultID holds the default value on creation for the id field.
	schoolprogram.DefaultID = schoolprogramDescID.Default.(func() uuid.UUID)
	solutionFields := schema.Solution{}.Fields()
	_ = solutionFields
	// solutionDescTitle is the schema descriptor for title field.
	solutionDescTitle := solutionFields[1].Descriptor()
	// solution.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	solution.TitleValidator = solutionDescTitle.Validators[0].(func(string) error)
	// solutionDescDetail is the schema descriptor for detail field.
	solutionDescDetail := solutionFields[2].Descriptor()
	// solution.DefaultDetail holds the default value on creation for the detail field.
	solution.DefaultDetail = solutionDescDetail.Default.(string)
	// solutionDescKeyFeatures is the schema descriptor for key_features field.
	solutionDescKeyFeatures := solutionFields[3].Descriptor()
	// solution.DefaultKeyFeatures holds the default value on creation for the key_features field.
	solution.DefaultKeyFeatures = solutionDescKeyFeatures.Default.(string)
	// solutionDescImplementationSteps is the schema descriptor for implementation_steps field.
	solutionDescImplementationSteps := solutionFields[4].Descriptor()
	// solution.DefaultImplementationSteps holds the default value on creation for the implementation_steps field.
	solution.DefaultImplementationSteps = solutionDescImplementationSteps.Default.(string)
	// solutionDescCreatedAt is the schema descriptor for created_at field.
	solutionDescCreatedAt := solutionFields[5].Descriptor()
	// solution.DefaultCreatedAt holds the default value on creation for the created_at field.
	solution.DefaultCreatedAt = solutionDescCreatedAt.Default.(func() time.Time)
	// solutionDescID is the schema descriptor for id field.
	solutionDescID := solutionFields[0].Descriptor()
	// solution.DefaultID holds the default value on creation for the id field.
	solution.DefaultID = solutionDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[5].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[7].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[8].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}

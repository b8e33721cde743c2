package command

import (
	"strings"
)

// Kind identifies one command of the catalog.
type Kind int

const (
	KindLoad Kind = iota
	KindSave
	KindListAll
	KindListClasses
	KindListRelationships
	KindListClass
	KindHelp
	KindExit
	KindUndo
	KindRedo
	KindAddClass
	KindRemoveClass
	KindRenameClass
	KindMoveClass
	KindAddField
	KindRemoveField
	KindRenameField
	KindRetypeField
	KindAddMethod
	KindRemoveMethod
	KindRenameMethod
	KindChangeReturnType
	KindAddParameter
	KindRemoveParameter
	KindRenameParameter
	KindRetypeParameter
	KindClearParameters
	KindSetParameters
	KindAddRelationship
	KindRemoveRelationship
	KindChangeSource
	KindChangeDestination
	KindChangeType
)

// Placeholder names understood by the dispatcher.
const (
	PlaceholderName             = "[name]"
	PlaceholderType             = "[type]"
	PlaceholderClassName        = "[class_name]"
	PlaceholderClassSource      = "[class_source]"
	PlaceholderClassDestination = "[class_destination]"
	PlaceholderFieldName        = "[field_name]"
	PlaceholderParamName        = "[param_name]"
	PlaceholderFilename         = "[filename]"
	PlaceholderInt              = "[int]"
	PlaceholderMethodSignature  = "[method_signature]"
	PlaceholderMethodDefinition = "[method_definition]"
	PlaceholderParamList        = "[param_list]"
	PlaceholderRelationshipType = "[relationship_type]"
)

type entry struct {
	kind      Kind
	template  string
	words     []string
	trackable bool
	build     func(a *args) action
}

func def(kind Kind, template string, trackable bool, build func(a *args) action) entry {
	return entry{
		kind:      kind,
		template:  template,
		words:     strings.Split(template, " "),
		trackable: trackable,
		build:     build,
	}
}

// catalog is ordered; the order is also the help output.
var catalog = []entry{
	def(KindLoad, "load [filename]", true, func(a *args) action {
		return loadAction{path: a.str()}
	}),
	def(KindSave, "save [filename]", false, func(a *args) action {
		return saveAction{path: a.str()}
	}),
	def(KindListAll, "list all", false, func(*args) action {
		return listAction{classes: true, relationships: true}
	}),
	def(KindListClasses, "list classes", false, func(*args) action {
		return listAction{classes: true}
	}),
	def(KindListRelationships, "list relationships", false, func(*args) action {
		return listAction{relationships: true}
	}),
	def(KindListClass, "list class [class_name]", false, func(a *args) action {
		return listClassAction{class: a.str()}
	}),
	def(KindHelp, "help", false, func(*args) action {
		return helpAction{}
	}),
	def(KindExit, "exit", false, func(*args) action {
		return exitAction{}
	}),
	def(KindUndo, "undo", false, func(*args) action {
		return undoAction{}
	}),
	def(KindRedo, "redo", false, func(*args) action {
		return redoAction{}
	}),
	def(KindAddClass, "class add [name]", true, func(a *args) action {
		return addClassAction{name: a.str()}
	}),
	def(KindRemoveClass, "class remove [class_name]", true, func(a *args) action {
		return removeClassAction{class: a.str()}
	}),
	def(KindRenameClass, "class rename [class_name] [name]", true, func(a *args) action {
		return renameClassAction{class: a.str(), name: a.str()}
	}),
	def(KindMoveClass, "class move [class_name] [int] [int]", true, func(a *args) action {
		return moveClassAction{class: a.str(), x: a.integer(), y: a.integer()}
	}),
	def(KindAddField, "field add [class_name] [name] [type]", true, func(a *args) action {
		return addFieldAction{class: a.str(), name: a.str(), typ: a.str()}
	}),
	def(KindRemoveField, "field remove [class_name] [field_name]", true, func(a *args) action {
		return removeFieldAction{class: a.str(), field: a.str()}
	}),
	def(KindRenameField, "field rename [class_name] [field_name] [name]", true, func(a *args) action {
		return renameFieldAction{class: a.str(), field: a.str(), name: a.str()}
	}),
	def(KindRetypeField, "field retype [class_name] [field_name] [type]", true, func(a *args) action {
		return retypeFieldAction{class: a.str(), field: a.str(), typ: a.str()}
	}),
	def(KindAddMethod, "method add [class_name] [method_definition]", true, func(a *args) action {
		return addMethodAction{class: a.str(), method: a.method()}
	}),
	def(KindRemoveMethod, "method remove [class_name] [method_signature]", true, func(a *args) action {
		return removeMethodAction{class: a.str(), sig: a.signature()}
	}),
	def(KindRenameMethod, "method rename [class_name] [method_signature] [name]", true, func(a *args) action {
		return renameMethodAction{class: a.str(), sig: a.signature(), name: a.str()}
	}),
	def(KindChangeReturnType, "method change-return-type [class_name] [method_signature] [type]", true, func(a *args) action {
		return changeReturnTypeAction{class: a.str(), sig: a.signature(), typ: a.str()}
	}),
	def(KindAddParameter, "parameter add [class_name] [method_signature] [name] [type]", true, func(a *args) action {
		return addParameterAction{class: a.str(), sig: a.signature(), name: a.str(), typ: a.str()}
	}),
	def(KindRemoveParameter, "parameter remove [class_name] [method_signature] [param_name]", true, func(a *args) action {
		return removeParameterAction{class: a.str(), sig: a.signature(), param: a.str()}
	}),
	def(KindRenameParameter, "parameter rename [class_name] [method_signature] [param_name] [name]", true, func(a *args) action {
		return renameParameterAction{class: a.str(), sig: a.signature(), param: a.str(), name: a.str()}
	}),
	def(KindRetypeParameter, "parameter retype [class_name] [method_signature] [param_name] [type]", true, func(a *args) action {
		return retypeParameterAction{class: a.str(), sig: a.signature(), param: a.str(), typ: a.str()}
	}),
	def(KindClearParameters, "parameters clear [class_name] [method_signature]", true, func(a *args) action {
		return clearParametersAction{class: a.str(), sig: a.signature()}
	}),
	def(KindSetParameters, "parameters set [class_name] [method_signature] [param_list]", true, func(a *args) action {
		return setParametersAction{class: a.str(), sig: a.signature(), params: a.params()}
	}),
	def(KindAddRelationship, "relationship add [class_name] [class_name] [relationship_type]", true, func(a *args) action {
		return addRelationshipAction{source: a.str(), destination: a.str(), typ: a.relationshipType()}
	}),
	def(KindRemoveRelationship, "relationship remove [class_source] [class_destination]", true, func(a *args) action {
		return removeRelationshipAction{source: a.str(), destination: a.str()}
	}),
	def(KindChangeSource, "relationship change source [class_source] [class_destination] [class_name]", true, func(a *args) action {
		return changeSourceAction{source: a.str(), destination: a.str(), to: a.str()}
	}),
	def(KindChangeDestination, "relationship change destination [class_source] [class_destination] [class_name]", true, func(a *args) action {
		return changeDestinationAction{source: a.str(), destination: a.str(), to: a.str()}
	}),
	def(KindChangeType, "relationship change type [class_source] [class_destination] [relationship_type]", true, func(a *args) action {
		return changeTypeAction{source: a.str(), destination: a.str(), typ: a.relationshipType()}
	}),
}

// Templates returns every command template in catalog order.
func Templates() []string {
	out := make([]string, len(catalog))
	for i, e := range catalog {
		out[i] = e.template
	}
	return out
}

// Words returns the words of a kind's template.
func Words(kind Kind) []string {
	return append([]string(nil), catalog[kind].words...)
}

// IsPlaceholder reports whether a template word is a placeholder.
func IsPlaceholder(word string) bool {
	return strings.HasPrefix(word, "[")
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(catalog) {
		return "unknown"
	}
	return catalog[k].template
}

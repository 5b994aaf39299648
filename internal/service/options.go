package service

import (
	"github.com/camilovegag/procesos-de-negocio/internal/domain"
	"github.com/camilovegag/procesos-de-negocio/internal/validation"
)

// Option is one selectable value and its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldDescriptor is what a surface needs to render one input. A nil
// Default means the field starts absent.
type FieldDescriptor struct {
	Name        validation.Field `json:"name"`
	GroupLabel  string           `json:"groupLabel,omitempty"`
	Label       string           `json:"label"`
	Control     string           `json:"control"`
	Placeholder string           `json:"placeholder,omitempty"`
	Required    bool             `json:"required"`
	Default     any              `json:"default,omitempty"`
	Options     []Option         `json:"options,omitempty"`
}

// FormOptions describes the intake form.
type FormOptions struct {
	Title  string            `json:"title"`
	Submit string            `json:"submit"`
	Fields []FieldDescriptor `json:"fields"`
}

var customerTypeLabels = map[domain.CustomerType]string{
	domain.CustomerTypeStar:         "⭐️ Estrella",
	domain.CustomerTypeCow:          "🐮 Vaca",
	domain.CustomerTypeDog:          "🐶 Perro",
	domain.CustomerTypeQuestionMark: "❓ Interrogante",
}

var criticalityLabels = map[domain.CriticalityLevel]string{
	domain.CriticalityVeryHigh: "Muy Alto",
	domain.CriticalityHigh:     "Alto",
	domain.CriticalityMedium:   "Medio",
	domain.CriticalityLow:      "Bajo",
	domain.CriticalityVeryLow:  "Muy bajo",
}

// Options returns the form layout, in display order.
func (s *IntakeService) Options() FormOptions {
	customerTypes := make([]Option, 0, len(domain.CustomerTypes))
	for _, ct := range domain.CustomerTypes {
		customerTypes = append(customerTypes, Option{Value: string(ct), Label: customerTypeLabels[ct]})
	}
	levels := make([]Option, 0, len(domain.CriticalityLevels))
	for _, lvl := range domain.CriticalityLevels {
		levels = append(levels, Option{Value: string(lvl), Label: criticalityLabels[lvl]})
	}

	return FormOptions{
		Title:  "Formulario de gestión inicial de ticket por CS",
		Submit: "Enviar",
		Fields: []FieldDescriptor{
			{
				Name:        validation.FieldCustomerName,
				Label:       "Nombre del cliente",
				Control:     "input",
				Placeholder: "ej: Universidad Autónoma de Mazatlán",
				Required:    true,
				Default:     "",
			},
			{
				Name:        validation.FieldCustomerType,
				Label:       "Tipo de cliente",
				Control:     "select",
				Placeholder: "Selecciona el tipo de cliente",
				Required:    true,
				Options:     customerTypes,
			},
			{
				Name:        validation.FieldCriticalityLevel,
				Label:       "Nivel de criticidad",
				Control:     "select",
				Placeholder: "Selecciona el nivel de criticidad",
				Required:    true,
				Options:     levels,
			},
			{
				Name:       validation.FieldEscalationNecessary,
				GroupLabel: "Escalamiento",
				Label:      "¿Es necesario escalar?",
				Control:    "checkbox",
				Required:   true,
				Default:    false,
			},
			{
				Name:        validation.FieldAdditionalComments,
				Label:       "Comentarios adicionales",
				Control:     "textarea",
				Placeholder: "Añade comentarios adicionales",
			},
		},
	}
}

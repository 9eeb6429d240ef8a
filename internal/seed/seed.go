// Package seed provides the demo portfolio the dashboard ships with.
// Deadlines and activity timestamps are relative to the given clock so
// the derived risk and alert picture stays meaningful.
package seed

import (
	"time"

	"prostor/internal/domain"
)

func days(n int) time.Duration { return time.Duration(n) * 24 * time.Hour }

// Projects returns the demo portfolio anchored at now.
func Projects(now time.Time) []domain.Project {
	return []domain.Project{
		{
			ID:           "P-001",
			Name:         "Квартира на Тверской",
			Client:       "Иванов А.С.",
			Stage:        domain.StageRough,
			Budget:       2500000,
			Deadline:     now.Add(days(5)),
			Assignees:    []string{"Прораб", "Дизайнер"},
			Tags:         []string{"новостройка", "премиум"},
			LastActivity: now.Add(-days(1)),
			Fields: domain.FieldBag{
				domain.FieldContactInfo:        domain.Bool(true),
				domain.FieldInitialRequest:     domain.Bool(true),
				domain.FieldMeasurementDone:    domain.Bool(true),
				domain.FieldFloorPlan:          domain.Bool(true),
				domain.FieldEstimateReady:      domain.Bool(true),
				domain.FieldEstimateApproved:   domain.Bool(true),
				domain.FieldContractSigned:     domain.Bool(true),
				domain.FieldPrepaymentReceived: domain.Bool(true),
				domain.FieldMaterialsOrdered:   domain.Bool(true),
				domain.FieldDeliveryScheduled:  domain.Bool(true),
				domain.FieldRoughDonePct:       domain.Number(65),
				domain.FieldInspectionPassed:   domain.Bool(false),
			},
		},
		{
			ID:           "P-002",
			Name:         "Офис на Арбате",
			Client:       "ООО «ТехноПром»",
			Stage:        domain.StageEstimate,
			Budget:       5000000,
			Deadline:     now.Add(days(14)),
			Assignees:    []string{"Дизайнер"},
			Tags:         []string{"офис", "срочно"},
			LastActivity: now.Add(-days(4)),
			Fields: domain.FieldBag{
				domain.FieldContactInfo:      domain.Bool(true),
				domain.FieldInitialRequest:   domain.Bool(true),
				domain.FieldMeasurementDone:  domain.Bool(true),
				domain.FieldFloorPlan:        domain.Bool(true),
				domain.FieldEstimateReady:    domain.Bool(true),
				domain.FieldEstimateApproved: domain.Bool(false),
			},
		},
		{
			ID:           "P-003",
			Name:         "Дача в Переделкино",
			Client:       "Петрова М.В.",
			Stage:        domain.StageContract,
			Budget:       1800000,
			Deadline:     now.Add(-days(2)),
			Assignees:    []string{"ПМ"},
			Tags:         []string{"загородный"},
			LastActivity: now.Add(-days(6)),
			Fields: domain.FieldBag{
				domain.FieldContactInfo:        domain.Bool(true),
				domain.FieldInitialRequest:     domain.Bool(true),
				domain.FieldMeasurementDone:    domain.Bool(true),
				domain.FieldFloorPlan:          domain.Bool(true),
				domain.FieldEstimateReady:      domain.Bool(true),
				domain.FieldEstimateApproved:   domain.Bool(true),
				domain.FieldContractSigned:     domain.Bool(true),
				domain.FieldPrepaymentReceived: domain.Bool(false),
			},
		},
		{
			ID:           "P-004",
			Name:         "Студия на Патриках",
			Client:       "Сидоров К.Л.",
			Stage:        domain.StageLead,
			Budget:       800000,
			Deadline:     now.Add(days(30)),
			Tags:         []string{"новостройка"},
			LastActivity: now.Add(-days(1)),
			Fields: domain.FieldBag{
				domain.FieldContactInfo:    domain.Bool(true),
				domain.FieldInitialRequest: domain.Bool(false),
			},
		},
		{
			ID:           "P-005",
			Name:         "Пентхаус Сити",
			Client:       "Козлов Д.А.",
			Stage:        domain.StageFinishing,
			Budget:       12000000,
			Deadline:     now.Add(days(7)),
			Assignees:    []string{"Прораб", "Снабженец"},
			Tags:         []string{"премиум", "VIP"},
			LastActivity: now,
			Fields: domain.FieldBag{
				domain.FieldContactInfo:        domain.Bool(true),
				domain.FieldInitialRequest:     domain.Bool(true),
				domain.FieldMeasurementDone:    domain.Bool(true),
				domain.FieldFloorPlan:          domain.Bool(true),
				domain.FieldEstimateReady:      domain.Bool(true),
				domain.FieldEstimateApproved:   domain.Bool(true),
				domain.FieldContractSigned:     domain.Bool(true),
				domain.FieldPrepaymentReceived: domain.Bool(true),
				domain.FieldMaterialsOrdered:   domain.Bool(true),
				domain.FieldDeliveryScheduled:  domain.Bool(true),
				domain.FieldRoughDonePct:       domain.Number(100),
				domain.FieldInspectionPassed:   domain.Bool(true),
				domain.FieldFinishingDonePct:   domain.Number(75),
				domain.FieldQualityCheck:       domain.Bool(false),
			},
		},
		{
			ID:           "P-006",
			Name:         "Ресторан «Восток»",
			Client:       "ИП Ахметов",
			Stage:        domain.StageProcurement,
			Budget:       8500000,
			Deadline:     now.Add(days(21)),
			Assignees:    []string{"Снабженец", "Прораб"},
			Tags:         []string{"коммерция", "HoReCa"},
			LastActivity: now.Add(-days(2)),
			Fields: domain.FieldBag{
				domain.FieldContactInfo:        domain.Bool(true),
				domain.FieldInitialRequest:     domain.Bool(true),
				domain.FieldMeasurementDone:    domain.Bool(true),
				domain.FieldFloorPlan:          domain.Bool(true),
				domain.FieldEstimateReady:      domain.Bool(true),
				domain.FieldEstimateApproved:   domain.Bool(true),
				domain.FieldContractSigned:     domain.Bool(true),
				domain.FieldPrepaymentReceived: domain.Bool(true),
				domain.FieldMaterialsOrdered:   domain.Bool(true),
				domain.FieldDeliveryScheduled:  domain.Bool(false),
			},
		},
		{
			ID:           "P-007",
			Name:         "Таунхаус Рублёвка",
			Client:       "Новиков С.П.",
			Stage:        domain.StageHandover,
			Budget:       25000000,
			Deadline:     now.Add(days(3)),
			Assignees:    []string{"ПМ", "Прораб"},
			Tags:         []string{"премиум", "загородный", "VIP"},
			LastActivity: now,
			Fields: domain.FieldBag{
				domain.FieldContactInfo:        domain.Bool(true),
				domain.FieldInitialRequest:     domain.Bool(true),
				domain.FieldMeasurementDone:    domain.Bool(true),
				domain.FieldFloorPlan:          domain.Bool(true),
				domain.FieldEstimateReady:      domain.Bool(true),
				domain.FieldEstimateApproved:   domain.Bool(true),
				domain.FieldContractSigned:     domain.Bool(true),
				domain.FieldPrepaymentReceived: domain.Bool(true),
				domain.FieldMaterialsOrdered:   domain.Bool(true),
				domain.FieldDeliveryScheduled:  domain.Bool(true),
				domain.FieldRoughDonePct:       domain.Number(100),
				domain.FieldInspectionPassed:   domain.Bool(true),
				domain.FieldFinishingDonePct:   domain.Number(100),
				domain.FieldQualityCheck:       domain.Bool(true),
				domain.FieldClientAccepted:     domain.Bool(false),
				domain.FieldFinalPayment:       domain.Bool(false),
			},
		},
		{
			ID:           "P-008",
			Name:         "Квартира Сокол",
			Client:       "Белова Е.Н.",
			Stage:        domain.StageMeasurement,
			Budget:       1200000,
			Deadline:     now.Add(days(45)),
			Assignees:    []string{"Дизайнер"},
			Tags:         []string{"вторичка"},
			LastActivity: now.Add(-days(1)),
			Fields: domain.FieldBag{
				domain.FieldContactInfo:     domain.Bool(true),
				domain.FieldInitialRequest:  domain.Bool(true),
				domain.FieldMeasurementDone: domain.Bool(false),
				domain.FieldFloorPlan:       domain.Bool(false),
			},
		},
	}
}

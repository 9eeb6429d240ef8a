package config

// defaultTemplate mirrors the catalogs the product ships with: nine
// lifecycle stages, eleven roles and three automation rules.
const defaultTemplate = `stages:
  - id: lead
    name: Лид
    required:
      - field: contactInfo
        label: Контактные данные
        kind: boolean
      - field: initialRequest
        label: Первичный запрос
        kind: boolean
  - id: measurement
    name: Замер
    required:
      - field: measurementDone
        label: Замер выполнен
        kind: boolean
      - field: floorPlan
        label: План помещения
        kind: boolean
  - id: estimate
    name: Смета
    required:
      - field: estimateReady
        label: Смета готова
        kind: boolean
      - field: estimateApproved
        label: Смета согласована
        kind: boolean
  - id: contract
    name: Договор
    required:
      - field: contractSigned
        label: Договор подписан
        kind: boolean
      - field: prepaymentReceived
        label: Предоплата получена
        kind: boolean
  - id: procurement
    name: Закупка
    required:
      - field: materialsOrdered
        label: Материалы заказаны
        kind: boolean
      - field: deliveryScheduled
        label: Доставка запланирована
        kind: boolean
  - id: rough
    name: Черновая
    required:
      - field: roughDonePct
        label: "Черновые работы ≥80%"
        kind: threshold
        threshold: 80
      - field: inspectionPassed
        label: Проверка пройдена
        kind: boolean
  - id: finishing
    name: Чистовая
    required:
      - field: finishingDonePct
        label: "Чистовые работы ≥90%"
        kind: threshold
        threshold: 90
      - field: qualityCheck
        label: Контроль качества
        kind: boolean
  - id: handover
    name: Сдача
    required:
      - field: clientAccepted
        label: Клиент принял
        kind: boolean
      - field: finalPayment
        label: Финальная оплата
        kind: boolean
  - id: warranty
    name: Гарантия
    required:
      - field: warrantyIssued
        label: Гарантия выдана
        kind: boolean

roles:
  - id: admin
    name: Администратор
    views: [kanban, design, estimate, procurement, logistics, finance, reports, sla, settings]
    permissions:
      move_stage: true
      finance: true
      procurement: true
      edit_fields: "*"
  - id: pm
    name: Руководитель/ПМ
    views: [kanban, design, estimate, procurement, logistics, finance, reports, sla]
    permissions:
      move_stage: true
      finance: true
      procurement: true
      edit_fields: "*"
  - id: designer
    name: Дизайнер
    views: [kanban, design, estimate]
    permissions:
      move_stage: false
      finance: false
      procurement: false
      edit_fields: [measurementDone, floorPlan, estimateReady]
  - id: foreman
    name: Прораб
    views: [kanban, procurement, logistics]
    permissions:
      move_stage: false
      finance: false
      procurement: true
      edit_fields: [roughDonePct, finishingDonePct, inspectionPassed, qualityCheck]
  - id: procurement
    name: Снабженец
    views: [kanban, procurement, logistics]
    permissions:
      move_stage: false
      finance: false
      procurement: true
      edit_fields: [materialsOrdered, deliveryScheduled]
  - id: finance
    name: Финансы
    views: [kanban, estimate, finance, reports]
    permissions:
      move_stage: false
      finance: true
      procurement: false
      edit_fields: [prepaymentReceived, finalPayment]
  - id: driver
    name: Водитель
    views: [logistics]
    permissions:
      move_stage: false
      finance: false
      procurement: false
      edit_fields: []
  - id: expeditor
    name: Экспедитор
    views: [logistics]
    permissions:
      move_stage: false
      finance: false
      procurement: false
      edit_fields: []
  - id: loader
    name: Грузчик
    views: [logistics]
    permissions:
      move_stage: false
      finance: false
      procurement: false
      edit_fields: []
  - id: worker
    name: Рабочий
    views: [kanban]
    permissions:
      move_stage: false
      finance: false
      procurement: false
      edit_fields: [roughDonePct, finishingDonePct]
  - id: client
    name: Клиент
    views: [client-portal]
    permissions:
      move_stage: false
      finance: false
      procurement: false
      edit_fields: [estimateApproved, clientAccepted]

rules:
  - id: R1
    name: Автоуведомление о сроках
    enabled: true
    priority: 1
    conditions:
      - kind: deadlineLte
        value: 2
    actions:
      - kind: notify
        message: "Срок сдачи менее 2 дней!"
      - kind: log
        message: "Сработало правило R1: приближается дедлайн"
    scope:
      stages: [rough, finishing, handover]
    stop_on_match: false
  - id: R2
    name: Предупреждение о простое
    enabled: true
    priority: 2
    conditions:
      - kind: inactivityGte
        value: 3
    actions:
      - kind: notify
        message: "Проект простаивает более 3 дней"
      - kind: log
        message: "Сработало правило R2: обнаружен простой"
    scope: {}
    stop_on_match: false
  - id: R3
    name: "Автопереход после 80% черновых"
    enabled: true
    priority: 3
    conditions:
      - kind: stageIs
        value: rough
      - kind: percentAtLeast
        value: 80
      - kind: fieldTrue
        value: inspectionPassed
    actions:
      - kind: moveNext
      - kind: log
        message: "Сработало правило R3: автопереход в чистовую"
    scope:
      stages: [rough]
    stop_on_match: true
`

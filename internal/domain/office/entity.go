package office

// Field keys shared by the form layer, the repositories and the HTTP adapter.
const (
	KeyName        = "name"
	KeyCPF         = "cpf"
	KeyAge         = "age"
	KeyPhone       = "phone"
	KeyAddress     = "address"
	KeyEmail       = "email"
	KeyCaseNumber  = "case_number"
	KeyDescription = "description"
	KeyClientCPF   = "client_cpf"
	KeyAmount      = "amount"
	KeyDateTime    = "date_time"
	KeyLocation    = "location"
	KeyHearingType = "hearing_type"
)

// ===============================
// Client
// ===============================

var ClientFields = []Field{
	{Label: "Nome", Key: KeyName, Type: FieldString, MaxLen: 100},
	{Label: "CPF", Key: KeyCPF, Type: FieldString, MaxLen: 20},
	{Label: "Idade", Key: KeyAge, Type: FieldInteger, Max: 150},
	{Label: "Telefone", Key: KeyPhone, Type: FieldString, MaxLen: 20},
	{Label: "Endereço", Key: KeyAddress, Type: FieldString, MaxLen: 255},
	{Label: "Email", Key: KeyEmail, Type: FieldString, MaxLen: 100},
}

type Client struct {
	Name    string `json:"name"`
	CPF     string `json:"cpf"`
	Age     int    `json:"age"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

func ClientFromValues(v Values) Client {
	return Client{
		Name:    v.String(KeyName),
		CPF:     v.String(KeyCPF),
		Age:     v.Int(KeyAge),
		Phone:   v.String(KeyPhone),
		Address: v.String(KeyAddress),
		Email:   v.String(KeyEmail),
	}
}

func (c Client) Values() Values {
	return Values{
		KeyName:    c.Name,
		KeyCPF:     c.CPF,
		KeyAge:     c.Age,
		KeyPhone:   c.Phone,
		KeyAddress: c.Address,
		KeyEmail:   c.Email,
	}
}

func (c Client) Validate() error  { return validateValues(ClientFields, c.Values()) }
func (c Client) Details() []string { return Details(ClientFields, c.Values()) }

// ===============================
// Case (processo)
// ===============================

var CaseFields = []Field{
	{Label: "Número do Processo", Key: KeyCaseNumber, Type: FieldString, MaxLen: 50},
	{Label: "Descrição", Key: KeyDescription, Type: FieldString},
	{Label: "CPF do Cliente", Key: KeyClientCPF, Type: FieldString, MaxLen: 20},
}

type Case struct {
	Number      string `json:"case_number"`
	Description string `json:"description"`
	ClientCPF   string `json:"client_cpf"`
}

func CaseFromValues(v Values) Case {
	return Case{
		Number:      v.String(KeyCaseNumber),
		Description: v.String(KeyDescription),
		ClientCPF:   v.String(KeyClientCPF),
	}
}

func (c Case) Values() Values {
	return Values{
		KeyCaseNumber:  c.Number,
		KeyDescription: c.Description,
		KeyClientCPF:   c.ClientCPF,
	}
}

func (c Case) Validate() error  { return validateValues(CaseFields, c.Values()) }
func (c Case) Details() []string { return Details(CaseFields, c.Values()) }

// ===============================
// Payment
// ===============================

// MaxAmount is the largest value a numeric(12,2) column holds.
const MaxAmount = 9999999999.99

var PaymentFields = []Field{
	{Label: "CPF do Cliente", Key: KeyClientCPF, Type: FieldString, MaxLen: 20},
	{Label: "Valor (R$)", Key: KeyAmount, Type: FieldDecimal, Max: MaxAmount},
	{Label: "Descrição", Key: KeyDescription, Type: FieldString, MaxLen: 255},
}

type Payment struct {
	ClientCPF   string  `json:"client_cpf"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

func PaymentFromValues(v Values) Payment {
	return Payment{
		ClientCPF:   v.String(KeyClientCPF),
		Amount:      v.Float(KeyAmount),
		Description: v.String(KeyDescription),
	}
}

func (p Payment) Values() Values {
	return Values{
		KeyClientCPF:   p.ClientCPF,
		KeyAmount:      p.Amount,
		KeyDescription: p.Description,
	}
}

func (p Payment) Validate() error  { return validateValues(PaymentFields, p.Values()) }
func (p Payment) Details() []string { return Details(PaymentFields, p.Values()) }

// ===============================
// Hearing (audiência)
// ===============================

// HearingFields lists client_cpf as derived: it always comes from the
// referenced case.
var HearingFields = []Field{
	{Label: "Número do Processo", Key: KeyCaseNumber, Type: FieldString, MaxLen: 50},
	{Label: "CPF do Cliente", Key: KeyClientCPF, Type: FieldString, Derived: true},
	{Label: "Data e Hora (DD/MM/AAAA HH:MM)", Key: KeyDateTime, Type: FieldString, Check: checkHearingTime},
	{Label: "Local", Key: KeyLocation, Type: FieldString, MaxLen: 255},
	{Label: "Tipo", Key: KeyHearingType, Type: FieldString, MaxLen: 100},
}

type Hearing struct {
	CaseNumber string `json:"case_number"`
	ClientCPF  string `json:"client_cpf"`
	DateTime   string `json:"date_time"`
	Location   string `json:"location"`
	Type       string `json:"hearing_type"`
}

func HearingFromValues(v Values) Hearing {
	return Hearing{
		CaseNumber: v.String(KeyCaseNumber),
		ClientCPF:  v.String(KeyClientCPF),
		DateTime:   v.String(KeyDateTime),
		Location:   v.String(KeyLocation),
		Type:       v.String(KeyHearingType),
	}
}

func (h Hearing) Values() Values {
	return Values{
		KeyCaseNumber:  h.CaseNumber,
		KeyClientCPF:   h.ClientCPF,
		KeyDateTime:    h.DateTime,
		KeyLocation:    h.Location,
		KeyHearingType: h.Type,
	}
}

func (h Hearing) Validate() error  { return validateValues(HearingFields, h.Values()) }
func (h Hearing) Details() []string { return Details(HearingFields, h.Values()) }

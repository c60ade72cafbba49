// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"io"
	"time"
)

// Ref: #/components/schemas/AddOns
type AddOns struct {
	Shot      float64 `json:"shot"`
	Syrup     float64 `json:"syrup"`
	PlantMilk float64 `json:"plantMilk"`
	Topping   float64 `json:"topping"`
}

// GetShot returns the value of Shot.
func (s *AddOns) GetShot() float64 {
	return s.Shot
}

// GetSyrup returns the value of Syrup.
func (s *AddOns) GetSyrup() float64 {
	return s.Syrup
}

// GetPlantMilk returns the value of PlantMilk.
func (s *AddOns) GetPlantMilk() float64 {
	return s.PlantMilk
}

// GetTopping returns the value of Topping.
func (s *AddOns) GetTopping() float64 {
	return s.Topping
}

// SetShot sets the value of Shot.
func (s *AddOns) SetShot(val float64) {
	s.Shot = val
}

// SetSyrup sets the value of Syrup.
func (s *AddOns) SetSyrup(val float64) {
	s.Syrup = val
}

// SetPlantMilk sets the value of PlantMilk.
func (s *AddOns) SetPlantMilk(val float64) {
	s.PlantMilk = val
}

// SetTopping sets the value of Topping.
func (s *AddOns) SetTopping(val float64) {
	s.Topping = val
}

// Ref: #/components/schemas/Beverage
type Beverage struct {
	BaseDrink OptString `json:"baseDrink"`
	Size      OptString `json:"size"`
	Temp      OptString `json:"temp"`
	Milk      OptString `json:"milk"`
	PlantMilk OptString `json:"plantMilk"`
	Shots     OptInt    `json:"shots"`
	Syrups    []string  `json:"syrups"`
	Toppings  []string  `json:"toppings"`
	IsDecaf   OptBool   `json:"isDecaf"`
}

// GetBaseDrink returns the value of BaseDrink.
func (s *Beverage) GetBaseDrink() OptString {
	return s.BaseDrink
}

// GetSize returns the value of Size.
func (s *Beverage) GetSize() OptString {
	return s.Size
}

// GetTemp returns the value of Temp.
func (s *Beverage) GetTemp() OptString {
	return s.Temp
}

// GetMilk returns the value of Milk.
func (s *Beverage) GetMilk() OptString {
	return s.Milk
}

// GetPlantMilk returns the value of PlantMilk.
func (s *Beverage) GetPlantMilk() OptString {
	return s.PlantMilk
}

// GetShots returns the value of Shots.
func (s *Beverage) GetShots() OptInt {
	return s.Shots
}

// GetSyrups returns the value of Syrups.
func (s *Beverage) GetSyrups() []string {
	return s.Syrups
}

// GetToppings returns the value of Toppings.
func (s *Beverage) GetToppings() []string {
	return s.Toppings
}

// GetIsDecaf returns the value of IsDecaf.
func (s *Beverage) GetIsDecaf() OptBool {
	return s.IsDecaf
}

// SetBaseDrink sets the value of BaseDrink.
func (s *Beverage) SetBaseDrink(val OptString) {
	s.BaseDrink = val
}

// SetSize sets the value of Size.
func (s *Beverage) SetSize(val OptString) {
	s.Size = val
}

// SetTemp sets the value of Temp.
func (s *Beverage) SetTemp(val OptString) {
	s.Temp = val
}

// SetMilk sets the value of Milk.
func (s *Beverage) SetMilk(val OptString) {
	s.Milk = val
}

// SetPlantMilk sets the value of PlantMilk.
func (s *Beverage) SetPlantMilk(val OptString) {
	s.PlantMilk = val
}

// SetShots sets the value of Shots.
func (s *Beverage) SetShots(val OptInt) {
	s.Shots = val
}

// SetSyrups sets the value of Syrups.
func (s *Beverage) SetSyrups(val []string) {
	s.Syrups = val
}

// SetToppings sets the value of Toppings.
func (s *Beverage) SetToppings(val []string) {
	s.Toppings = val
}

// SetIsDecaf sets the value of IsDecaf.
func (s *Beverage) SetIsDecaf(val OptBool) {
	s.IsDecaf = val
}

// Ref: #/components/schemas/Breakdown
type Breakdown struct {
	BasePrice float64 `json:"basePrice"`
	Shots     float64 `json:"shots"`
	Syrups    float64 `json:"syrups"`
	PlantMilk float64 `json:"plantMilk"`
	Toppings  float64 `json:"toppings"`
	Subtotal  float64 `json:"subtotal"`
}

// GetBasePrice returns the value of BasePrice.
func (s *Breakdown) GetBasePrice() float64 {
	return s.BasePrice
}

// GetShots returns the value of Shots.
func (s *Breakdown) GetShots() float64 {
	return s.Shots
}

// GetSyrups returns the value of Syrups.
func (s *Breakdown) GetSyrups() float64 {
	return s.Syrups
}

// GetPlantMilk returns the value of PlantMilk.
func (s *Breakdown) GetPlantMilk() float64 {
	return s.PlantMilk
}

// GetToppings returns the value of Toppings.
func (s *Breakdown) GetToppings() float64 {
	return s.Toppings
}

// GetSubtotal returns the value of Subtotal.
func (s *Breakdown) GetSubtotal() float64 {
	return s.Subtotal
}

// SetBasePrice sets the value of BasePrice.
func (s *Breakdown) SetBasePrice(val float64) {
	s.BasePrice = val
}

// SetShots sets the value of Shots.
func (s *Breakdown) SetShots(val float64) {
	s.Shots = val
}

// SetSyrups sets the value of Syrups.
func (s *Breakdown) SetSyrups(val float64) {
	s.Syrups = val
}

// SetPlantMilk sets the value of PlantMilk.
func (s *Breakdown) SetPlantMilk(val float64) {
	s.PlantMilk = val
}

// SetToppings sets the value of Toppings.
func (s *Breakdown) SetToppings(val float64) {
	s.Toppings = val
}

// SetSubtotal sets the value of Subtotal.
func (s *Breakdown) SetSubtotal(val float64) {
	s.Subtotal = val
}

// Ref: #/components/schemas/Discount
type Discount struct {
	Reason string  `json:"reason"`
	Amount float64 `json:"amount"`
}

// GetReason returns the value of Reason.
func (s *Discount) GetReason() string {
	return s.Reason
}

// GetAmount returns the value of Amount.
func (s *Discount) GetAmount() float64 {
	return s.Amount
}

// SetReason sets the value of Reason.
func (s *Discount) SetReason(val string) {
	s.Reason = val
}

// SetAmount sets the value of Amount.
func (s *Discount) SetAmount(val float64) {
	s.Amount = val
}

// Ref: #/components/schemas/Error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GetCode returns the value of Code.
func (s *Error) GetCode() int {
	return s.Code
}

// GetMessage returns the value of Message.
func (s *Error) GetMessage() string {
	return s.Message
}

// SetCode sets the value of Code.
func (s *Error) SetCode(val int) {
	s.Code = val
}

// SetMessage sets the value of Message.
func (s *Error) SetMessage(val string) {
	s.Message = val
}

// Ref: #/components/schemas/Menu
type Menu struct {
	Sizes      []SizePrice `json:"sizes"`
	AddOns     AddOns      `json:"addOns"`
	Promotions []Promotion `json:"promotions"`
}

// GetSizes returns the value of Sizes.
func (s *Menu) GetSizes() []SizePrice {
	return s.Sizes
}

// GetAddOns returns the value of AddOns.
func (s *Menu) GetAddOns() AddOns {
	return s.AddOns
}

// GetPromotions returns the value of Promotions.
func (s *Menu) GetPromotions() []Promotion {
	return s.Promotions
}

// SetSizes sets the value of Sizes.
func (s *Menu) SetSizes(val []SizePrice) {
	s.Sizes = val
}

// SetAddOns sets the value of AddOns.
func (s *Menu) SetAddOns(val AddOns) {
	s.AddOns = val
}

// SetPromotions sets the value of Promotions.
func (s *Menu) SetPromotions(val []Promotion) {
	s.Promotions = val
}

// NewOptBool returns new OptBool with value set to v.
func NewOptBool(v bool) OptBool {
	return OptBool{
		Value: v,
		Set:   true,
	}
}

// OptBool is optional bool.
type OptBool struct {
	Value bool
	Set   bool
}

// IsSet returns true if OptBool was set.
func (o OptBool) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptBool) Reset() {
	var v bool
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptBool) SetTo(v bool) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptBool) Get() (v bool, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptBool) Or(d bool) bool {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptInt returns new OptInt with value set to v.
func NewOptInt(v int) OptInt {
	return OptInt{
		Value: v,
		Set:   true,
	}
}

// OptInt is optional int.
type OptInt struct {
	Value int
	Set   bool
}

// IsSet returns true if OptInt was set.
func (o OptInt) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptInt) Reset() {
	var v int
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptInt) SetTo(v int) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptInt) Get() (v int, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptInt) Or(d int) int {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{
		Value: v,
		Set:   true,
	}
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptString) Reset() {
	var v string
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptString) Get() (v string, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// Ref: #/components/schemas/Promotion
type Promotion struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// GetCode returns the value of Code.
func (s *Promotion) GetCode() string {
	return s.Code
}

// GetDescription returns the value of Description.
func (s *Promotion) GetDescription() string {
	return s.Description
}

// SetCode sets the value of Code.
func (s *Promotion) SetCode(val string) {
	s.Code = val
}

// SetDescription sets the value of Description.
func (s *Promotion) SetDescription(val string) {
	s.Description = val
}

// Ref: #/components/schemas/Quote
type Quote struct {
	ID            string      `json:"id"`
	CreatedAt     time.Time   `json:"createdAt"`
	Items         []QuoteLine `json:"items"`
	PromoCodes    []string    `json:"promoCodes"`
	Discounts     []Discount  `json:"discounts"`
	Subtotal      float64     `json:"subtotal"`
	TotalDiscount float64     `json:"totalDiscount"`
	Total         float64     `json:"total"`
	Receipt       string      `json:"receipt"`
}

// GetID returns the value of ID.
func (s *Quote) GetID() string {
	return s.ID
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Quote) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// GetItems returns the value of Items.
func (s *Quote) GetItems() []QuoteLine {
	return s.Items
}

// GetPromoCodes returns the value of PromoCodes.
func (s *Quote) GetPromoCodes() []string {
	return s.PromoCodes
}

// GetDiscounts returns the value of Discounts.
func (s *Quote) GetDiscounts() []Discount {
	return s.Discounts
}

// GetSubtotal returns the value of Subtotal.
func (s *Quote) GetSubtotal() float64 {
	return s.Subtotal
}

// GetTotalDiscount returns the value of TotalDiscount.
func (s *Quote) GetTotalDiscount() float64 {
	return s.TotalDiscount
}

// GetTotal returns the value of Total.
func (s *Quote) GetTotal() float64 {
	return s.Total
}

// GetReceipt returns the value of Receipt.
func (s *Quote) GetReceipt() string {
	return s.Receipt
}

// SetID sets the value of ID.
func (s *Quote) SetID(val string) {
	s.ID = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Quote) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// SetItems sets the value of Items.
func (s *Quote) SetItems(val []QuoteLine) {
	s.Items = val
}

// SetPromoCodes sets the value of PromoCodes.
func (s *Quote) SetPromoCodes(val []string) {
	s.PromoCodes = val
}

// SetDiscounts sets the value of Discounts.
func (s *Quote) SetDiscounts(val []Discount) {
	s.Discounts = val
}

// SetSubtotal sets the value of Subtotal.
func (s *Quote) SetSubtotal(val float64) {
	s.Subtotal = val
}

// SetTotalDiscount sets the value of TotalDiscount.
func (s *Quote) SetTotalDiscount(val float64) {
	s.TotalDiscount = val
}

// SetTotal sets the value of Total.
func (s *Quote) SetTotal(val float64) {
	s.Total = val
}

// SetReceipt sets the value of Receipt.
func (s *Quote) SetReceipt(val string) {
	s.Receipt = val
}

func (*Quote) quoteOrderRes() {}

// Ref: #/components/schemas/QuoteLine
type QuoteLine struct {
	Beverage  Beverage  `json:"beverage"`
	Breakdown Breakdown `json:"breakdown"`
	Discount  float64   `json:"discount"`
	Final     float64   `json:"final"`
	Labels    []string  `json:"labels"`
	Valid     bool      `json:"valid"`
	Errors    []string  `json:"errors"`
	Warnings  []string  `json:"warnings"`
}

// GetBeverage returns the value of Beverage.
func (s *QuoteLine) GetBeverage() Beverage {
	return s.Beverage
}

// GetBreakdown returns the value of Breakdown.
func (s *QuoteLine) GetBreakdown() Breakdown {
	return s.Breakdown
}

// GetDiscount returns the value of Discount.
func (s *QuoteLine) GetDiscount() float64 {
	return s.Discount
}

// GetFinal returns the value of Final.
func (s *QuoteLine) GetFinal() float64 {
	return s.Final
}

// GetLabels returns the value of Labels.
func (s *QuoteLine) GetLabels() []string {
	return s.Labels
}

// GetValid returns the value of Valid.
func (s *QuoteLine) GetValid() bool {
	return s.Valid
}

// GetErrors returns the value of Errors.
func (s *QuoteLine) GetErrors() []string {
	return s.Errors
}

// GetWarnings returns the value of Warnings.
func (s *QuoteLine) GetWarnings() []string {
	return s.Warnings
}

// SetBeverage sets the value of Beverage.
func (s *QuoteLine) SetBeverage(val Beverage) {
	s.Beverage = val
}

// SetBreakdown sets the value of Breakdown.
func (s *QuoteLine) SetBreakdown(val Breakdown) {
	s.Breakdown = val
}

// SetDiscount sets the value of Discount.
func (s *QuoteLine) SetDiscount(val float64) {
	s.Discount = val
}

// SetFinal sets the value of Final.
func (s *QuoteLine) SetFinal(val float64) {
	s.Final = val
}

// SetLabels sets the value of Labels.
func (s *QuoteLine) SetLabels(val []string) {
	s.Labels = val
}

// SetValid sets the value of Valid.
func (s *QuoteLine) SetValid(val bool) {
	s.Valid = val
}

// SetErrors sets the value of Errors.
func (s *QuoteLine) SetErrors(val []string) {
	s.Errors = val
}

// SetWarnings sets the value of Warnings.
func (s *QuoteLine) SetWarnings(val []string) {
	s.Warnings = val
}

type QuoteOrderBadRequest Error

func (*QuoteOrderBadRequest) quoteOrderRes() {}

type QuoteOrderUnprocessableEntity Error

func (*QuoteOrderUnprocessableEntity) quoteOrderRes() {}

// Ref: #/components/schemas/QuoteRequest
type QuoteRequest struct {
	Items      []Beverage `json:"items"`
	PromoCodes []string   `json:"promoCodes"`
}

// GetItems returns the value of Items.
func (s *QuoteRequest) GetItems() []Beverage {
	return s.Items
}

// GetPromoCodes returns the value of PromoCodes.
func (s *QuoteRequest) GetPromoCodes() []string {
	return s.PromoCodes
}

// SetItems sets the value of Items.
func (s *QuoteRequest) SetItems(val []Beverage) {
	s.Items = val
}

// SetPromoCodes sets the value of PromoCodes.
func (s *QuoteRequest) SetPromoCodes(val []string) {
	s.PromoCodes = val
}

type RenderReceiptBadRequest Error

func (*RenderReceiptBadRequest) renderReceiptRes() {}

type RenderReceiptOK struct {
	Data io.Reader
}

// Read reads data from the Data reader.
//
// Kept to satisfy the io.Reader interface.
func (s RenderReceiptOK) Read(p []byte) (n int, err error) {
	if s.Data == nil {
		return 0, io.EOF
	}
	return s.Data.Read(p)
}

func (*RenderReceiptOK) renderReceiptRes() {}

type RenderReceiptUnprocessableEntity Error

func (*RenderReceiptUnprocessableEntity) renderReceiptRes() {}

// Ref: #/components/schemas/SizePrice
type SizePrice struct {
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

// GetSize returns the value of Size.
func (s *SizePrice) GetSize() string {
	return s.Size
}

// GetPrice returns the value of Price.
func (s *SizePrice) GetPrice() float64 {
	return s.Price
}

// SetSize sets the value of Size.
func (s *SizePrice) SetSize(val string) {
	s.Size = val
}

// SetPrice sets the value of Price.
func (s *SizePrice) SetPrice(val float64) {
	s.Price = val
}

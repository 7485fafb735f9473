package service

// serviceablePincodes зона доставки: фиксированный набор почтовых индексов
var serviceablePincodes = map[string]struct{}{
	"591143": {},
	"591153": {},
	"590018": {},
	"590006": {},
	"590008": {},
}

// PincodeServiceable проверяет, доставляем ли мы по этому индексу.
// Точное совпадение строки, без нормализации.
func PincodeServiceable(pincode string) bool {
	_, ok := serviceablePincodes[pincode]
	return ok
}

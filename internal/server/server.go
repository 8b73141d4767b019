package server

const maxOffset = 1_000_000

// Данный сервер объединяет специфичные HTTP сервера, отвечающие за обработку конкретных сущностей
type Server struct {
	CalculationServer
}

func NewServer(
	calculationServer CalculationServer,
) Server {
	return Server{
		CalculationServer: calculationServer,
	}
}

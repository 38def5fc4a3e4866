package server

// Server объединяет HTTP сервера отдельных сущностей. Пока есть только маркет
// оружия.
type Server struct {
	MarketServer
}

func NewServer(
	marketServer MarketServer,
) Server {
	return Server{
		MarketServer: marketServer,
	}
}

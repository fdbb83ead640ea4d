package repository

// TxRunner ejecuta fn como una transacción lógica: ningún otro escritor
// puede intercalarse entre la lectura del snapshot y la escritura de vuelta.
// Es el candado explícito que exige portar el modelo de un solo hilo del
// origen a un runtime con paralelismo real.
type TxRunner interface {
	Run(fn func() error) error
}

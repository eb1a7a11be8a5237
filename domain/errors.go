package domain

import "errors"

// ErrDadosIncompletos indica que um campo obrigatório está ausente ou não
// pôde ser interpretado. Não é uma falha de cálculo: o chamador mantém o
// resultado anterior e simplesmente não produz um novo.
var ErrDadosIncompletos = errors.New("dados incompletos")

package repo

import "errors"

// ErrNotFound возвращается точечными чтениями и необратимыми операциями,
// адресованными несуществующему id. Обратимые мутации (pin/tags/soft-delete)
// при отсутствии записи — тихий no-op и эту ошибку не возвращают.
var ErrNotFound = errors.New("record not found")

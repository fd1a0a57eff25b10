package provider_test

const samplePage = `<!DOCTYPE html>
<html>
<body>
<ul>
  <li id="quotation-oficial-desktop">
    <div class="css-4ywm3s"><p class="chakra-text css-113t1jt">$1.140</p></div>
    <div class="css-6g5h8t"><p class="chakra-text css-12u0t8b">$1.190</p></div>
  </li>
  <li id="quotation-informal-desktop">
    <div class="css-4ywm3s"><p class="chakra-text css-113t1jt">$1.225,50</p></div>
    <div class="css-6g5h8t"><p class="chakra-text css-12u0t8b">$1.245,50</p></div>
  </li>
  <li id="quotation-mep-desktop">
    <div class="css-6g5h8t"><p class="chakra-text css-12u0t8b">$1.198,73</p></div>
  </li>
</ul>
</body>
</html>`

const blueFallbackPage = `<html><body><ul>
  <li id="quotation-blue-desktop">
    <div class="css-4ywm3s"><p class="css-113t1jt">$1.300</p></div>
    <div class="css-6g5h8t"><p class="css-12u0t8b">$1.320</p></div>
  </li>
</ul></body></html>`

const brokenPage = `<html><body><ul>
  <li id="quotation-oficial-desktop">
    <div class="css-4ywm3s"><p class="css-113t1jt">sin cotizar</p></div>
    <div class="css-6g5h8t"><span class="css-12u0t8b">$1.190</span></div>
  </li>
</ul></body></html>`
